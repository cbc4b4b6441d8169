// Package gateway sends card refunds to the payment provider.
package gateway
