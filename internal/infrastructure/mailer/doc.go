// Package mailer delivers notification and credential mails through SendGrid,
// or writes them to the log for local development.
package mailer
