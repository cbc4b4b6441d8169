// Package payments models payment transactions, per-user credit wallets with an
// append-only ledger, organizer fees, bonus tiers and normalized provider webhooks.
//
// Amounts are decimal.Decimal values in major currency units rounded to cents.
package payments
