package crawl

import (
	"html"
	"regexp"
	"strings"
)

// Pre-compiled regular expressions for HTML text extraction.
var (
	scriptTag    = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleTag     = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	noscriptTag  = regexp.MustCompile(`(?is)<noscript[^>]*>.*?</noscript>`)
	headTag      = regexp.MustCompile(`(?is)<head[^>]*>.*?</head>`)
	svgTag       = regexp.MustCompile(`(?is)<svg[^>]*>.*?</svg>`)
	navTag       = regexp.MustCompile(`(?is)<nav[^>]*>.*?</nav>`)
	headerTag    = regexp.MustCompile(`(?is)<header[^>]*>.*?</header>`)
	footerTag    = regexp.MustCompile(`(?is)<footer[^>]*>.*?</footer>`)
	iframeTag    = regexp.MustCompile(`(?is)<iframe[^>]*>.*?</iframe>`)
	htmlComments = regexp.MustCompile(`(?s)<!--.*?-->`)
	allTags      = regexp.MustCompile(`<[^>]+>`)
	whitespace   = regexp.MustCompile(`\s+`)
)

// ExtractText strips non-content elements (scripts, styles, navigation,
// headers/footers, embeds) from a page and returns its visible text with
// all whitespace collapsed to single spaces.
func ExtractText(page string) string {
	page = scriptTag.ReplaceAllString(page, " ")
	page = styleTag.ReplaceAllString(page, " ")
	page = noscriptTag.ReplaceAllString(page, " ")
	page = headTag.ReplaceAllString(page, " ")
	page = svgTag.ReplaceAllString(page, " ")
	page = navTag.ReplaceAllString(page, " ")
	page = headerTag.ReplaceAllString(page, " ")
	page = footerTag.ReplaceAllString(page, " ")
	page = iframeTag.ReplaceAllString(page, " ")
	page = htmlComments.ReplaceAllString(page, " ")

	// Strip all remaining tags, then decode entities.
	page = allTags.ReplaceAllString(page, " ")
	page = html.UnescapeString(page)

	// Collapse runs of whitespace (including newlines) to single spaces.
	page = whitespace.ReplaceAllString(page, " ")

	return strings.TrimSpace(page)
}
