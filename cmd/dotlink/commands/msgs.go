package commands

// Message constants
const (
	MsgRootShort = "Link your environment config into place"
	MsgRootLong  = `dotlink bootstraps a personal environment from a dotfiles repository
checkout. It symlinks shell, terminal-multiplexer and editor configuration
onto their home-directory targets, clones the few third-party plugins the
setup needs, and can serve the repo's docs locally.

Links are applied idempotently: a target that already points at its source
is left alone, and anything else occupying a target is reported as a
conflict - dotlink never overwrites your files.`

	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagRepo    = "Dotfiles repository root (default: $DOTLINK_REPO, then the current directory)"

	MsgUpShort = "Apply the manifest: create links and clone plugins"
	MsgUpLong  = `Applies every entry of the manifest in order. Existing correct links
are no-ops; conflicting targets are reported and skipped, never replaced.
Plugin repositories are cloned once and left alone afterwards.

Every entry is attempted even when an earlier one fails; the exit status
is non-zero if anything went wrong.`
	MsgUpExample = `  # Link everything and fetch plugins
  dotlink up

  # Preview without touching the filesystem
  dotlink up --dry-run

  # Links only, skip plugin clones
  dotlink up --no-fetch`

	MsgStatusShort = "Show the state of every link and plugin"
	MsgStatusLong  = `Read-only view of the manifest: which links are in place, which are
missing, and which targets are occupied by something else. Never modifies
the filesystem and always exits 0 when the inspection itself succeeds.`

	MsgInitShort = "Write a starter dotlink.toml to the repo root"
	MsgInitLong  = `Writes a commented starter manifest, seeded from the built-in
defaults, to dotlink.toml at the repository root. Refuses to overwrite an
existing manifest.`

	MsgDocsShort = "Manage the local documentation server"

	MsgDocsServeShort = "Serve a docs directory in the background"
	MsgDocsServeLong  = `Starts a static file server for the given directory as a detached
background process, records its pid, and opens the URL in your browser.
Use 'dotlink docs stop' to shut it down.`

	MsgDocsStopShort = "Stop the background documentation server"

	MsgDocsViewShort = "Render a markdown document in the terminal"
)
