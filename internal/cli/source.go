package cli

import (
	"github.com/tessro/serenade/internal/core"
	serrors "github.com/tessro/serenade/internal/errors"
	"github.com/tessro/serenade/internal/playlist"
)

// loadPlaylist picks the playlist from, in order: the --dir flag, the
// first argument, then playlist.path and playlist.dir from the config.
// Skipped entries are returned as warnings.
func loadPlaylist(args []string, dir string) (*core.Playlist, []error, error) {
	var (
		res *playlist.Result
		err error
	)
	switch {
	case dir != "":
		res, err = playlist.FromDir(dir)
	case len(args) > 0:
		res, err = playlist.Load(args[0])
	case cfg.Playlist.Path != "":
		res, err = playlist.Load(cfg.Playlist.Path)
	case cfg.Playlist.Dir != "":
		res, err = playlist.FromDir(cfg.Playlist.Dir)
	default:
		return nil, nil, serrors.WithSuggestion(serrors.ErrPlaylistNotFound,
			"pass a playlist file, use --dir, or set playlist.path in ~/.serenaderc")
	}
	if err != nil {
		return nil, nil, err
	}
	return res.Data, res.Errors, nil
}
