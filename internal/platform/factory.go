package platform

import (
	"context"

	"github.com/aretw0/rapport/pkg/core"
	"github.com/aretw0/rapport/pkg/logic"
)

// New opens storage at path and returns a Manager loaded with its data.
//
//	mgr, err := rapport.New("./data/addressbook.json", rapport.WithVersioning(true))
func New(path string, opts ...Option) (*logic.Manager, error) {
	o := buildOptions(opts)
	ctx := context.Background()

	storage, err := openStorage(ctx, path, o)
	if err != nil {
		return nil, err
	}

	mgr := logic.NewManager(storage, core.Prefs{DataFile: path}, o.logger)
	if err := mgr.Reload(ctx); err != nil {
		_ = mgr.Close()
		return nil, err
	}
	return mgr, nil
}
