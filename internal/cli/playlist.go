package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/tessro/serenade/internal/core"
	serrors "github.com/tessro/serenade/internal/errors"
	"github.com/tessro/serenade/internal/playlist"
)

var playlistDir string

var playlistCmd = &cobra.Command{
	Use:     "playlist",
	Aliases: []string{"pl"},
	Short:   "Inspect playlists",
}

var playlistShowCmd = &cobra.Command{
	Use:   "show [playlist.toml]",
	Short: "List the tracks of a playlist",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPlaylistShow,
}

var playlistValidateCmd = &cobra.Command{
	Use:   "validate [playlist.toml]",
	Short: "Check that every track and cover can be found",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPlaylistValidate,
}

func init() {
	playlistCmd.PersistentFlags().StringVarP(&playlistDir, "dir", "d", "", "read the audio files in a directory")
	playlistCmd.AddCommand(playlistShowCmd)
	playlistCmd.AddCommand(playlistValidateCmd)
	rootCmd.AddCommand(playlistCmd)
}

type trackRow struct {
	Index int `json:"index"`
	core.Track
	Size int64 `json:"size,omitempty"`
}

func runPlaylistShow(cmd *cobra.Command, args []string) error {
	pl, warnings, err := loadPlaylist(args, playlistDir)
	if err != nil {
		return err
	}

	rows := make([]trackRow, 0, pl.Len())
	var total uint64
	for i, t := range pl.Tracks {
		row := trackRow{Index: i + 1, Track: t}
		if info, err := os.Stat(t.Source); err == nil {
			row.Size = info.Size()
			total += uint64(info.Size())
		}
		rows = append(rows, row)
	}

	if JSONOutput() {
		return printJSON(os.Stdout, map[string]any{
			"name":   pl.Name,
			"tracks": rows,
		})
	}

	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %v\n", w)
	}
	if pl.IsEmpty() {
		fmt.Println("Playlist is empty")
		return nil
	}

	t := newTable(os.Stdout)
	if pl.Name != "" {
		t.SetTitle(pl.Name)
	}
	t.AppendHeader(table.Row{"#", "Title", "Artist", "Cover", "Size"})
	for _, r := range rows {
		size := "-"
		if r.Size > 0 {
			size = humanize.Bytes(uint64(r.Size))
		}
		cover := "-"
		if r.Cover != "" {
			cover = string(r.CoverKind)
		}
		t.AppendRow(table.Row{strconv.Itoa(r.Index), r.Title, r.Artist, cover, size})
	}
	t.AppendFooter(table.Row{"", "", "", "", humanize.Bytes(total)})
	t.Render()
	return nil
}

func runPlaylistValidate(cmd *cobra.Command, args []string) error {
	pl, warnings, err := loadPlaylist(args, playlistDir)
	if err != nil {
		return err
	}
	issues := playlist.Check(pl)

	if JSONOutput() {
		msgs := make([]string, 0, len(warnings)+len(issues))
		for _, w := range warnings {
			msgs = append(msgs, w.Error())
		}
		for _, is := range issues {
			msgs = append(msgs, is.Error())
		}
		if err := printJSON(os.Stdout, map[string]any{
			"tracks": pl.Len(),
			"ok":     len(msgs) == 0,
			"issues": msgs,
		}); err != nil {
			return err
		}
	} else {
		for _, w := range warnings {
			fmt.Printf("%s %v\n", StatusIcon(false), w)
		}
		for _, is := range issues {
			fmt.Printf("%s %v\n", StatusIcon(false), is)
		}
		if len(warnings)+len(issues) == 0 {
			fmt.Printf("%s %d tracks ok\n", StatusIcon(true), pl.Len())
		}
	}

	if n := len(warnings) + len(issues); n > 0 {
		return fmt.Errorf("%w: %d problem(s) found", serrors.ErrInvalidPlaylist, n)
	}
	return nil
}
