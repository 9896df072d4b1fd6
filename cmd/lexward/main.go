// Command lexward is the CLI tool for working with LIFT dictionary
// documents: parsing, regenerating in canonical form, validating, querying,
// and inspecting lift-ranges vocabularies.
package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/alecthomas/kong"
	"github.com/zeebo/blake3"

	"github.com/lexward/lexward/core/lift"
	"github.com/lexward/lexward/core/liftranges"
	"github.com/lexward/lexward/core/xml"
	"github.com/lexward/lexward/internal/fileutil"
	"github.com/lexward/lexward/internal/logging"
	"github.com/lexward/lexward/internal/validation"
)

const version = "0.2.0"

// CLI defines the command-line interface for lexward.
var CLI struct {
	LogLevel  string `name:"log-level" default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)"`
	LogFormat string `name:"log-format" default:"text" enum:"text,json" help:"Log output format (text, json)"`

	Convert ConvertCmd  `cmd:"" help:"Parse a LIFT document and regenerate it in canonical form"`
	Check   CheckCmd    `cmd:"" help:"Run semantic validation over a LIFT document"`
	Info    InfoCmd     `cmd:"" help:"Summarize a LIFT document"`
	Query   QueryCmd    `cmd:"" help:"Run an XPath query against a LIFT document"`
	Hash    HashCmd     `cmd:"" help:"Print the BLAKE3 hash of a document's canonical form"`
	Ranges  RangesGroup `cmd:"" help:"lift-ranges vocabulary operations"`
	Version VersionCmd  `cmd:"" help:"Print version information"`
}

// RangesGroup contains lift-ranges operations.
type RangesGroup struct {
	Fmt  RangesFmtCmd  `cmd:"" help:"Reformat a lift-ranges document"`
	Info RangesInfoCmd `cmd:"" help:"Summarize a lift-ranges document"`
}

// ConvertCmd parses a document and rewrites it in canonical form.
type ConvertCmd struct {
	Input     string `arg:"" help:"Input LIFT document (.lift, .xml, optionally .xz)" type:"existingfile"`
	Output    string `short:"o" help:"Output path; defaults to stdout"`
	Normalize bool   `help:"Fold all text to Unicode NFC"`
}

func (c *ConvertCmd) Run() error {
	start := time.Now()
	doc, err := fileutil.ReadDocument(c.Input)
	if err != nil {
		return err
	}

	codec := lift.NewCodecWithOptions(lift.Options{NormalizeUnicode: c.Normalize})
	entries, err := codec.Parse(doc)
	if err != nil {
		logging.CodecError(c.Input, "parse", err)
		return err
	}
	logging.DocumentParsed(c.Input, len(entries), time.Since(start))

	out, err := codec.Generate(entries)
	if err != nil {
		logging.CodecError(c.Input, "generate", err)
		return err
	}

	if c.Output == "" {
		fmt.Print(out)
		return nil
	}
	if err := fileutil.WriteDocument(c.Output, out); err != nil {
		return err
	}
	logging.DocumentGenerated(c.Output, len(entries), len(out))
	return nil
}

// CheckCmd runs the semantic validator over a parsed document.
type CheckCmd struct {
	Input    string `arg:"" help:"Input LIFT document" type:"existingfile"`
	LangTags bool   `help:"Also check language tags against BCP 47"`
	JSON     bool   `help:"Emit issues as JSON"`
}

func (c *CheckCmd) Run() error {
	doc, err := fileutil.ReadDocument(c.Input)
	if err != nil {
		return err
	}
	entries, err := lift.Parse(doc)
	if err != nil {
		logging.CodecError(c.Input, "parse", err)
		return err
	}

	v := validation.EntryValidator{CheckLangTags: c.LangTags}
	issues := v.Validate(entries)

	if c.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(issues); err != nil {
			return err
		}
	} else {
		for _, issue := range issues {
			fmt.Println(issue)
		}
	}

	if len(issues) > 0 {
		return fmt.Errorf("%d issue(s) in %d entries", len(issues), len(entries))
	}
	fmt.Fprintf(os.Stderr, "ok: %d entries, no issues\n", len(entries))
	return nil
}

// InfoCmd summarizes a document.
type InfoCmd struct {
	Input string `arg:"" help:"Input LIFT document" type:"existingfile"`
}

func (c *InfoCmd) Run() error {
	doc, err := fileutil.ReadDocument(c.Input)
	if err != nil {
		return err
	}
	entries, err := lift.Parse(doc)
	if err != nil {
		return err
	}

	senses, examples := 0, 0
	langs := make(map[string]bool)
	for _, e := range entries {
		senses += len(e.Senses)
		for _, lang := range e.LexicalUnit.Langs() {
			langs[lang] = true
		}
		for _, s := range e.Senses {
			examples += len(s.Examples)
			for _, lang := range s.Glosses.Langs() {
				langs[lang] = true
			}
		}
	}

	fmt.Printf("entries:   %d\n", len(entries))
	fmt.Printf("senses:    %d\n", senses)
	fmt.Printf("examples:  %d\n", examples)
	fmt.Printf("languages: %d\n", len(langs))
	return nil
}

// QueryCmd runs a raw XPath query against the document tree. Useful for
// inspecting content the model does not surface, like unknown elements.
type QueryCmd struct {
	Input string `arg:"" help:"Input XML document" type:"existingfile"`
	Expr  string `arg:"" help:"XPath expression"`
}

func (c *QueryCmd) Run() error {
	doc, err := fileutil.ReadDocument(c.Input)
	if err != nil {
		return err
	}
	d, err := xml.Parse([]byte(doc))
	if err != nil {
		return err
	}
	nodes, err := d.XPath(c.Expr)
	if err != nil {
		return err
	}
	for _, n := range nodes {
		fmt.Println(n.Text())
	}
	fmt.Fprintf(os.Stderr, "%d node(s)\n", len(nodes))
	return nil
}

// HashCmd hashes the canonical form of a document, so two documents that
// differ only in formatting or namespace declaration hash identically.
type HashCmd struct {
	Input string `arg:"" help:"Input LIFT document" type:"existingfile"`
	Raw   bool   `help:"Hash the raw bytes instead of the canonical form"`
}

func (c *HashCmd) Run() error {
	doc, err := fileutil.ReadDocument(c.Input)
	if err != nil {
		return err
	}

	subject := doc
	if !c.Raw {
		entries, err := lift.Parse(doc)
		if err != nil {
			return err
		}
		subject, err = lift.Generate(entries)
		if err != nil {
			return err
		}
	}

	sum := blake3.Sum256([]byte(subject))
	fmt.Printf("%s  %s\n", hex.EncodeToString(sum[:]), c.Input)
	return nil
}

// RangesFmtCmd reformats a lift-ranges document.
type RangesFmtCmd struct {
	Input  string `arg:"" help:"Input lift-ranges document" type:"existingfile"`
	Output string `short:"o" help:"Output path; defaults to stdout"`
}

func (c *RangesFmtCmd) Run() error {
	doc, err := fileutil.ReadDocument(c.Input)
	if err != nil {
		return err
	}
	ranges, err := liftranges.Parse(doc)
	if err != nil {
		return err
	}
	out, err := liftranges.Generate(ranges)
	if err != nil {
		return err
	}
	if c.Output == "" {
		fmt.Print(out)
		return nil
	}
	return fileutil.WriteDocument(c.Output, out)
}

// RangesInfoCmd summarizes a lift-ranges document.
type RangesInfoCmd struct {
	Input string `arg:"" help:"Input lift-ranges document" type:"existingfile"`
}

func (c *RangesInfoCmd) Run() error {
	doc, err := fileutil.ReadDocument(c.Input)
	if err != nil {
		return err
	}
	ranges, err := liftranges.Parse(doc)
	if err != nil {
		return err
	}
	for _, id := range sortedRangeIDs(ranges) {
		r := ranges[id]
		total, depth := countElements(r.Values, 1)
		fmt.Printf("%s: %d values, depth %d\n", id, total, depth)
	}
	return nil
}

func sortedRangeIDs(ranges liftranges.RangeSet) []string {
	ids := make([]string, 0, len(ranges))
	for id := range ranges {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func countElements(els []*liftranges.Element, depth int) (total, maxDepth int) {
	maxDepth = depth
	for _, el := range els {
		total++
		t, d := countElements(el.Children, depth+1)
		total += t
		if d > maxDepth {
			maxDepth = d
		}
	}
	if len(els) == 0 {
		maxDepth = depth - 1
	}
	return total, maxDepth
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("lexward version %s (LIFT %s)\n", version, lift.Version)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("lexward"),
		kong.Description("LexWard - LIFT dictionary document tools"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	logging.InitLogger(logging.ParseLevel(CLI.LogLevel), logFormat(CLI.LogFormat))
	err := ctx.Run(ctx)
	ctx.FatalIfErrorf(err)
}

func logFormat(name string) logging.Format {
	if name == "json" {
		return logging.FormatJSON
	}
	return logging.FormatText
}
