package query

import (
	"fmt"
	"strings"

	"github.com/khanglvm/icon-hub-mcp/internal/history"
)

// ExampleUsage renders a markdown usage guide for one icon: installation,
// basic usage, every variant and attribute examples. A miss renders the
// check message and the suggestions instead.
func (s *Service) ExampleUsage(req ExampleRequest) (out string, err error) {
	defer recoverPanic(history.OpExample, &err)

	name, err := requireText(history.OpExample, "name", req.Name)
	if err != nil {
		return "", err
	}
	if _, err := requireText(history.OpExample, "library", req.Library); err != nil {
		return "", err
	}
	library, err := s.resolveLibrary(history.OpExample, req.Library)
	if err != nil {
		return "", err
	}
	if library == "" {
		return "", invalidf(history.OpExample, "a single library is required")
	}

	res := s.index.Check(name, library, req.Variant)

	var b strings.Builder
	fmt.Fprintf(&b, "## Icon: %s (%s)\n\n", name, library)

	if cmd := s.installCommand(library); cmd != "" {
		b.WriteString("### ⚠️ Installation Required\n")
		fmt.Fprintf(&b, "To use %s icons, install the package in your Laravel project:\n", library)
		fmt.Fprintf(&b, "```bash\n%s\n```\n\n", cmd)
	}

	if res.Exists {
		fmt.Fprintf(&b, "### Basic Usage\n```blade\n%s\n```\n\n", s.index.Example(name, library, req.Variant))
		b.WriteString("### All Variants\n")
		for _, v := range res.Variants {
			fmt.Fprintf(&b, "\n**%s:**\n```blade\n%s\n```\n", v, s.index.Example(name, library, v))
		}

		b.WriteString("\n### With Attributes\n```blade\n")
		b.WriteString("{{-- Custom size and color --}}\n")
		fmt.Fprintf(&b, "<x-icon name=\"%s\" class=\"w-5 h-5 text-primary-500\" />\n", name)
		if tag := s.componentTag(library, name, req.Variant); tag != "" {
			b.WriteString("\n{{-- Using component syntax --}}\n")
			fmt.Fprintf(&b, "<%s class=\"w-6 h-6\" />\n", tag)
		}
		b.WriteString("```")
	} else {
		b.WriteString(res.Message)
		if len(res.Suggestions) > 0 {
			b.WriteString("\n\n### Did you mean?\n")
			for _, sug := range res.Suggestions {
				fmt.Fprintf(&b, "- **%s** (%s)\n", sug.Name, sug.Library)
			}
		}
	}

	s.track(history.NewEvent(history.OpExample, name, library, boolCount(res.Exists), res.Exists))
	return b.String(), nil
}

// componentTag expands the library's component template, e.g.
// "x-heroicons::outline.user". It is empty when no template is configured.
func (s *Service) componentTag(library, name, variant string) string {
	lib := s.libraries[library]
	if lib == nil || lib.Component == "" {
		return ""
	}
	if variant == "" {
		variant = lib.DefaultVariant
	}
	return strings.NewReplacer("{variant}", variant, "{name}", name).Replace(lib.Component)
}
