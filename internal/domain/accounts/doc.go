// Package accounts holds user identities and the adaptive sign-in rules around them:
// lockout tiers, global and per-user authentication policies, MFA methods, one-time
// credentials and the activity trail written on every attempt.
package accounts
