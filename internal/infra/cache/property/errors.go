package property

import "errors"

// ErrInvalidate возвращается, когда запись не удалось удалить из кэша
var ErrInvalidate = errors.New("property.cache: failed to invalidate")
