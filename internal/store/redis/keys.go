package redis

const (
	// KeyBookmarks is the single durable key holding the serialized
	// bookmark set.
	KeyBookmarks = "skillbridge:bookmarked"
)

// BookmarksKey returns the redis key for the bookmark set.
func BookmarksKey() string {
	return KeyBookmarks
}
