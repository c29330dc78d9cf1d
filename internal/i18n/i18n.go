package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the source locale; its strings are the message keys.
const BaseLocale = "en-US"

type catalogFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

//go:embed locales/*.yaml
var embeddedFS embed.FS

var (
	loadOnce   sync.Once
	loaded     *catalog.Builder
	loadedTags []language.Tag
	loadErr    error
)

// Translator renders toolbar strings for one locale.
type Translator struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a translator for the closest supported match to locale.
// Unknown or empty locales resolve to BaseLocale.
func New(locale string) *Translator {
	cat, tags := embedded()
	tag := language.AmericanEnglish
	if strings.TrimSpace(locale) != "" && len(tags) > 0 {
		matcher := language.NewMatcher(tags)
		if _, idx, conf := matcher.Match(language.Make(locale)); conf != language.No {
			tag = tags[idx]
		}
	}
	return &Translator{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(cat)),
	}
}

// T translates msg. Strings without an entry come back unchanged.
func (t *Translator) T(msg string) string {
	if t == nil {
		return msg
	}
	return t.printer.Sprintf(msg)
}

// Number formats n with locale digit grouping.
func (t *Translator) Number(n int) string {
	if t == nil {
		return fmt.Sprintf("%d", n)
	}
	return t.printer.Sprintf("%d", n)
}

func (t *Translator) Locale() string {
	if t == nil {
		return BaseLocale
	}
	return t.tag.String()
}

// Supported lists the locales with a catalog, base locale first.
func Supported() []string {
	_, tags := embedded()
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		out = append(out, tag.String())
	}
	return out
}

func embedded() (*catalog.Builder, []language.Tag) {
	loadOnce.Do(func() {
		loaded, loadedTags, loadErr = LoadFromFS(embeddedFS)
		if loadErr != nil {
			loaded = catalog.NewBuilder(catalog.Fallback(language.AmericanEnglish))
			loadedTags = []language.Tag{language.AmericanEnglish}
		}
	})
	return loaded, loadedTags
}

// LoadFromFS builds a catalog from locales/*.yaml in fsys.
func LoadFromFS(fsys fs.FS) (*catalog.Builder, []language.Tag, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	sort.Strings(paths)

	cat := catalog.NewBuilder(catalog.Fallback(language.AmericanEnglish))
	tags := []language.Tag{language.AmericanEnglish}
	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("read catalog %s: %w", path, err)
		}
		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, nil, fmt.Errorf("parse catalog %s: %w", path, err)
		}
		tag, err := language.Parse(strings.TrimSpace(file.Locale))
		if err != nil {
			return nil, nil, fmt.Errorf("catalog %s locale %q: %w", path, file.Locale, err)
		}
		for key, msg := range file.Messages {
			if err := cat.SetString(tag, key, msg); err != nil {
				return nil, nil, fmt.Errorf("catalog %s key %q: %w", path, key, err)
			}
		}
		if tag != language.AmericanEnglish {
			tags = append(tags, tag)
		}
	}
	return cat, tags, nil
}
