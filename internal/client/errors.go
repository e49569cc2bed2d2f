package client

import "errors"

// ErrCatalogDisabled is returned by List when no catalog database is
// configured.
var ErrCatalogDisabled = errors.New("no backup catalog configured (set --catalog or STORAGE_CATALOG_DSN)")
