package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Generator identifies the static site generator that produced a page.
type Generator string

// Generators with known navigation chrome.
const (
	GeneratorUnknown    Generator = ""
	GeneratorDocusaurus Generator = "docusaurus"
	GeneratorMkDocs     Generator = "mkdocs"
	GeneratorSphinx     Generator = "sphinx"
	GeneratorVitePress  Generator = "vitepress"
	GeneratorVuePress   Generator = "vuepress"
	GeneratorGitBook    Generator = "gitbook"
	GeneratorNextra     Generator = "nextra"
)

// chrome lists the sidebar, navbar and table-of-contents selectors of each
// generator. Their link lists often pass as content on documentation pages.
var chrome = map[Generator][]string{
	GeneratorDocusaurus: {".navbar", ".theme-doc-sidebar-container", ".table-of-contents", ".pagination-nav", ".theme-doc-footer"},
	GeneratorMkDocs:     {".md-header", ".md-sidebar", ".md-footer", "[data-md-component='navigation']", "[data-md-component='toc']"},
	GeneratorSphinx:     {".wy-nav-side", ".sphinxsidebar", ".related", "#localtoc", ".rst-footer-buttons"},
	GeneratorVitePress:  {".VPNav", ".VPSidebar", ".VPDocAsideOutline", ".VPDocFooter"},
	GeneratorVuePress:   {".navbar", ".sidebar", ".page-nav", ".page-edit"},
	GeneratorGitBook:    {"[data-testid='space.header']", "[data-testid='space.sidebar']", "[data-testid='page.desktopTableOfContents']"},
	GeneratorNextra:     {".nextra-navbar", ".nextra-sidebar", ".nextra-toc"},
}

// ChromeSelectors returns the navigation selectors pruned for g.
func ChromeSelectors(g Generator) []string {
	return chrome[g]
}

// DetectGenerator inspects the meta generator tag, then generator-specific
// classes and attributes. Returns GeneratorUnknown when nothing matches.
func DetectGenerator(doc *goquery.Document) Generator {
	if g := fromMetaGenerator(doc); g != GeneratorUnknown {
		return g
	}

	has := func(selectors ...string) bool {
		for _, s := range selectors {
			if doc.Find(s).Length() > 0 {
				return true
			}
		}
		return false
	}

	switch {
	case has("#__docusaurus_skipToContent_fallback", ".theme-doc-sidebar-container"):
		return GeneratorDocusaurus
	case has("[data-md-color-scheme]", "[data-md-component]", ".md-nav--primary"):
		return GeneratorMkDocs
	case has(".toctree-wrapper", ".wy-nav-side", ".wy-menu-vertical", ".sphinxsidebar"):
		return GeneratorSphinx
	// VitePress reuses some VuePress classes, so it is checked first.
	case has("#VPContent", ".VPDoc", ".VPDocAsideOutline"):
		return GeneratorVitePress
	case has(".theme-default-content", ".sidebar-links", ".vuepress-navbar"):
		return GeneratorVuePress
	case has("[data-testid='space.sidebar']", "[data-testid='page.desktopTableOfContents']") || gitBookRoot(doc):
		return GeneratorGitBook
	case has(".nextra-navbar", ".nextra-sidebar", ".nextra-toc"):
		return GeneratorNextra
	}
	return GeneratorUnknown
}

func fromMetaGenerator(doc *goquery.Document) Generator {
	content, _ := doc.Find("meta[name='generator']").Last().Attr("content")
	content = strings.ToLower(content)
	if content == "" {
		return GeneratorUnknown
	}

	for _, g := range []Generator{
		GeneratorSphinx, GeneratorGitBook, GeneratorDocusaurus, GeneratorMkDocs,
		GeneratorVitePress, GeneratorVuePress, GeneratorNextra,
	} {
		if strings.Contains(content, string(g)) {
			return g
		}
	}
	return GeneratorUnknown
}

// gitBookRoot reports whether the html element carries at least two of
// GitBook's theme classes.
func gitBookRoot(doc *goquery.Document) bool {
	class, _ := doc.Find("html").First().Attr("class")
	n := 0
	for _, c := range []string{"circular-corners", "theme-clean", "tint"} {
		if strings.Contains(class, c) {
			n++
		}
	}
	return n >= 2
}
