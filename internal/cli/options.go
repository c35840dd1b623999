package cli

import (
	"fmt"
	"log/slog"
	"maps"
	"strings"

	"github.com/nao1215/tsvsql"
	"github.com/nao1215/tsvsql/domain/model"
	"github.com/nao1215/tsvsql/textfile"
	"github.com/spf13/cobra"
)

// options holds the flags shared by every command
type options struct {
	nullWords       []string
	keywordSuffix   string
	ignoreFirstLine bool
	tableName       string
	colTypes        []string
	newline         string
	encoding        string
	mode            string
	cacheLines      int
	configPath      string
	output          string
	verbose         bool
}

// bindFlags registers the shared flags as persistent flags of cmd
func (o *options) bindFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringSliceVar(&o.nullWords, "null", nil, "Comma separated cell values written as NULL and ignored for type inference")
	flags.StringVar(&o.keywordSuffix, "keyword-suffix", tsvsql.DefaultKeywordSuffix, "Suffix appended to column names that are SQL keywords (max 8 characters)")
	flags.BoolVar(&o.ignoreFirstLine, "ignore-first-line", false, "Treat the first line as data and name columns col_0, col_1, ...")
	flags.StringVar(&o.tableName, "table-name", "", "Table name (default: derived from the file name)")
	flags.StringArrayVar(&o.colTypes, "col-type", nil, "Column type override as name:type, repeatable (text, vc255, vc127, vc31, decimal_P_S, i8..ui64, bool, date, string, int, decimal, boolean)")
	flags.StringVar(&o.newline, "newline", "unix", "Newline convention (unix, mac, windows)")
	flags.StringVar(&o.encoding, "encoding", "utf-8", "Text encoding of the input")
	flags.StringVar(&o.mode, "mode", "auto", "How plain text files are read (auto, memory, lazy)")
	flags.IntVar(&o.cacheLines, "cache-lines", textfile.DefaultCacheCapacity, "Lines cached when reading lazily (0 disables the cache)")
	flags.StringVar(&o.configPath, "config", "", "YAML config file")
	flags.StringVarP(&o.output, "output", "o", "", "Write the result to this file (.gz, .xz and .zst are compressed)")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "Log debug diagnostics to stderr")
}

// applyConfig fills every option the user did not set on the command line
// from the config file
func (o *options) applyConfig(cmd *cobra.Command, cfg *Config) {
	changed := cmd.Flags().Changed
	if !changed("table-name") && cfg.TableName != "" {
		o.tableName = cfg.TableName
	}
	if !changed("null") && len(cfg.NullWords) > 0 {
		o.nullWords = cfg.NullWords
	}
	if !changed("keyword-suffix") && cfg.KeywordSuffix != "" {
		o.keywordSuffix = cfg.KeywordSuffix
	}
	if !changed("ignore-first-line") && cfg.IgnoreFirstLine {
		o.ignoreFirstLine = true
	}
	if !changed("newline") && cfg.Newline != "" {
		o.newline = cfg.Newline
	}
	if !changed("encoding") && cfg.Encoding != "" {
		o.encoding = cfg.Encoding
	}
	if !changed("mode") && cfg.Mode != "" {
		o.mode = cfg.Mode
	}
	if !changed("cache-lines") && cfg.CacheLines != nil {
		o.cacheLines = *cfg.CacheLines
	}
}

// columnTypes merges the config file types with the --col-type flags.
// Flags win for the same column. Unknown tokens are rejected here, before
// any file is read.
func (o *options) columnTypes(cfg *Config) (map[string]string, error) {
	types := make(map[string]string)
	if cfg != nil {
		maps.Copy(types, cfg.ColumnTypes)
	}
	for _, arg := range o.colTypes {
		name, token, ok := strings.Cut(arg, ":")
		name = strings.TrimSpace(name)
		if !ok || name == "" || strings.TrimSpace(token) == "" {
			return nil, fmt.Errorf("invalid --col-type %q: want name:type", arg)
		}
		if _, err := model.ParseOverride(token); err != nil {
			return nil, fmt.Errorf("invalid --col-type %q: %w", arg, err)
		}
		types[name] = token
	}
	return types, nil
}

// parse builds a table from the file at path using the resolved options
func (o *options) parse(cmd *cobra.Command, path string, logger *slog.Logger) (*tsvsql.Table, error) {
	var cfg *Config
	if o.configPath != "" {
		loaded, err := LoadConfig(o.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
		o.applyConfig(cmd, cfg)
	}

	types, err := o.columnTypes(cfg)
	if err != nil {
		return nil, err
	}
	newline, err := textfile.ParseNewline(o.newline)
	if err != nil {
		return nil, err
	}
	mode, err := tsvsql.ParseLoadMode(o.mode)
	if err != nil {
		return nil, err
	}

	b := tsvsql.NewBuilder().
		AddPath(path).
		SetTableName(o.tableName).
		SetNullWords(o.nullWords...).
		SetKeywordSuffix(o.keywordSuffix).
		SetColumnTypes(types).
		SetNewline(newline).
		SetEncoding(o.encoding).
		SetLoadMode(mode).
		SetCacheLines(o.cacheLines).
		SetLogger(logger)
	if o.ignoreFirstLine {
		b.SkipHeaderLine()
	}
	built, err := b.Build(cmd.Context())
	if err != nil {
		return nil, err
	}
	return built.Parse(cmd.Context())
}
