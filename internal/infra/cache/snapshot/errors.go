package snapshot

import "errors"

var (
	// ErrSave возвращается при ошибке сохранения снапшота
	ErrSave = errors.New("snapshot.store: failed to save snapshot")

	// ErrLoad возвращается при ошибке чтения снапшота
	ErrLoad = errors.New("snapshot.store: failed to load snapshot")
)
