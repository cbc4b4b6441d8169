// Package memberships models paid plans and user subscriptions to them.
package memberships
