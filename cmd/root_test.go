package cmd

import (
	"os"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lepinkainen/calliope/internal/metadata"
	"github.com/lepinkainen/calliope/internal/testutil"
)

func parseCLI(t *testing.T, args ...string) (*CLI, *kong.Context) {
	t.Helper()

	originalArgs := os.Args
	os.Args = append([]string{"calliope"}, args...)
	t.Cleanup(func() { os.Args = originalArgs })

	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("calliope"),
		kong.Description("Resolve ISBNs, IMDb IDs and barcodes into normalized metadata."),
		kong.UsageOnError(),
		kong.Exit(func(code int) {
			t.Fatalf("unexpected Kong exit %d", code)
		}),
	)

	return cli, ctx
}

func TestServeCommandParsing(t *testing.T) {
	testutil.ResetViper(t)

	cli, ctx := parseCLI(t, "serve", "-l", ":9090")

	assert.Equal(t, "serve", ctx.Command())
	assert.Equal(t, ":9090", cli.Serve.Listen)
}

func TestResolveCommandParsing(t *testing.T) {
	testutil.ResetViper(t)

	cli, ctx := parseCLI(t, "resolve", "9780134190440",
		"--type", "book",
		"--interactive",
		"--download-cover",
		"--output", "out.json")

	assert.Equal(t, "resolve <identifier>", ctx.Command())
	assert.Equal(t, "9780134190440", cli.Resolve.Identifier)
	assert.Equal(t, "book", cli.Resolve.Type)
	assert.True(t, cli.Resolve.Interactive)
	assert.True(t, cli.Resolve.DownloadCover)
	assert.Equal(t, "out.json", cli.Resolve.Output)
	assert.Equal(t, "covers", cli.Resolve.CoverDir, "cover dir should default to covers")
}

func TestSearchCommandParsing(t *testing.T) {
	testutil.ResetViper(t)

	cli, ctx := parseCLI(t, "search", "movie", "blade", "runner")

	assert.Equal(t, "search <type> <query>", ctx.Command())
	assert.Equal(t, "movie", cli.Search.Type)
	assert.Equal(t, []string{"blade", "runner"}, cli.Search.Query)
}

func TestCacheCommandParsing(t *testing.T) {
	testutil.ResetViper(t)

	t.Run("clear", func(t *testing.T) {
		cli, ctx := parseCLI(t, "cache", "clear", "--expired")
		assert.Equal(t, "cache clear", ctx.Command())
		assert.True(t, cli.Cache.Clear.Expired)
	})

	t.Run("stats", func(t *testing.T) {
		_, ctx := parseCLI(t, "cache", "stats")
		assert.Equal(t, "cache stats", ctx.Command())
	})
}

func TestInitCommandWritesConfig(t *testing.T) {
	testutil.ResetViper(t)
	env := testutil.NewTestEnv(t)

	cmd := &InitCmd{Path: env.Path("config.yaml")}
	require.NoError(t, cmd.Run(nil))

	assert.True(t, env.FileExists("config.yaml"))
	assert.Contains(t, env.ReadFileString("config.yaml"), "api_key: changeme")

	// Second run refuses to clobber the file.
	require.Error(t, cmd.Run(nil))
}

func TestParseHintFlag(t *testing.T) {
	hint, err := parseHintFlag("")
	require.NoError(t, err)
	assert.Equal(t, metadata.MediaType(""), hint)

	hint, err = parseHintFlag("music")
	require.NoError(t, err)
	assert.Equal(t, metadata.MediaMusic, hint)

	_, err = parseHintFlag("vinyl")
	require.Error(t, err)
}

func TestInitLogging(t *testing.T) {
	tests := []string{"", "debug", "info", "warn", "error", "invalid"}

	for _, level := range tests {
		name := level
		if name == "" {
			name = "default"
		}
		t.Run(name, func(t *testing.T) {
			require.NotPanics(t, func() {
				initLogging(level)
			})
		})
	}
}
