// internal/event/types.go
package event

const (
	SplashFinished EventType = "SplashFinished" // заставка завершилась, монтируем страницу
	ThemeChanged   EventType = "ThemeChanged"   // Data: theme.Theme
	FeedReloaded   EventType = "FeedReloaded"   // Data: *defs.Feed
	SnapshotSaved  EventType = "SnapshotSaved"  // Data: путь к файлу
)
