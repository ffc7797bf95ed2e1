package seen

import "github.com/gh-notifier/gh-notifier/internal/github"

// Partition splits a fetched batch against the seen-set.
//
// fresh holds the items whose identifier is not in seen, in fetch order. ids holds
// the identifier of every fetched item, new or not, in fetch order; it is what the
// caller writes back so the file mirrors the latest poll.
func Partition(items []github.Notification, seen Set) (fresh []github.Notification, ids []string) {
	ids = make([]string, 0, len(items))
	for _, n := range items {
		id := n.Identifier()
		ids = append(ids, id)
		if seen.Contains(id) {
			continue
		}
		fresh = append(fresh, n)
	}
	return fresh, ids
}
