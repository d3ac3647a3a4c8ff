package kv

import "fmt"

// keyspace derives every key of a promo code from one hash tag so that the
// ledger scripts touch a single cluster slot.
type keyspace struct {
	prefix string
}

func newKeyspace(prefix string) keyspace {
	if prefix == "" {
		prefix = "promo"
	}
	return keyspace{prefix: prefix}
}

func (k keyspace) key(code, name string) string {
	return fmt.Sprintf("%s:{%s}:%s", k.prefix, code, name)
}

func (k keyspace) schedule(code string) string   { return k.key(code, "schedule") }
func (k keyspace) count(code string) string      { return k.key(code, "count") }
func (k keyspace) emails(code string) string     { return k.key(code, "emails") }
func (k keyspace) holds(code string) string      { return k.key(code, "holds") }
func (k keyspace) holdEmails(code string) string { return k.key(code, "hold_emails") }
func (k keyspace) emailHolds(code string) string { return k.key(code, "email_holds") }
func (k keyspace) orders(code string) string     { return k.key(code, "orders") }
func (k keyspace) log(code string) string        { return k.key(code, "log") }

// ledgerKeys is the KEYS layout shared by the ledger scripts.
func (k keyspace) ledgerKeys(code string) []string {
	return []string{
		k.count(code),
		k.emails(code),
		k.holds(code),
		k.holdEmails(code),
		k.emailHolds(code),
		k.orders(code),
		k.log(code),
	}
}
