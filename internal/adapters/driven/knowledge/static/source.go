// Package static provides the hand-authored website knowledge source.
package static

import (
	"context"
	"fmt"
	"os"

	"github.com/arah-infotech/sitebot/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.KnowledgeSource = (*Source)(nil)

// defaultCorpus is the embedded description of the business. It is the
// knowledge base when no override file is configured; being a constant, it
// has no I/O and no failure mode.
const defaultCorpus = `Arah Infotech is a leading digital solutions agency that specializes in combining cutting-edge AI technology with creative design to drive business growth and digital excellence.

### 🏢 About the Company
Arah Infotech is dedicated to transforming businesses through intelligent digital solutions. We operate with an AI-first mindset, ensuring that every project benefits from the latest in automation and data-driven insights.

### 🛠️ Core Services
- **Website Designing**: We create stunning, responsive, and high-converting websites tailored to your brand identity.
- **AI Solutions**: We develop custom AI tools, intelligent automation systems, and AI-powered analytics to help businesses stay ahead.
- **Digital Marketing**: Our data-driven strategies include SEO, SEM, social media marketing, and content strategy to amplify your reach.
- **Software Development**: Custom software solutions built to scale with your business needs.

### 🚀 Specialized AI Products
- **AI Marketing Dashboard**: A unified platform that aggregates marketing data and provides actionable AI insights.
- **Website Performance Analyzer**: An automated tool that scans for SEO, speed, and UX bottlenecks.
- **Lead Intelligence Platform**: An AI system that scores and nurtures leads to increase sales efficiency.

### 📊 Industries We Serve
- **Startups & SMEs**: Helping new businesses launch fast and scale efficiently.
- **Enterprises**: Digital transformation and complex AI integrations at scale.
- **E-commerce**: Converting visitors into loyal customers through optimized funnels.
- **Education & IT**: Building platforms for modern learning and technical excellence.

### 💼 Careers at Arah Infotech
We are always looking for talented individuals to join our growing team. Potential roles include:
- **AI & Machine Learning Engineers**
- **Full Stack Web Developers**
- **Digital Marketing Strategists**
- **UI/UX Designers**
Interested candidates can reach out via our contact page or check the careers section on our website for active openings.

### 💡 Why Choose Us?
- **Efficiency**: 3x faster results and 50% reduced time-to-market.
- **Reliability**: 99.9% uptime guarantee for all our products.
- **Growth**: 2.5x higher conversion rates on average for our clients.

### 📍 Contact & Location
- **Website**: https://arahinfotech.net
- **Location**: Headquarters based in India, serving clients globally.
- **Get Started**: Book a free AI-powered digital audit today!`

// Source returns a fixed corpus. Fetch is deterministic: repeated calls
// return byte-identical content.
type Source struct {
	overridePath string
}

// New creates a static knowledge source. If overridePath is non-empty, the
// file at that path replaces the embedded default corpus.
func New(overridePath string) *Source {
	return &Source{overridePath: overridePath}
}

// Name identifies the strategy.
func (s *Source) Name() string {
	return "static"
}

// Fetch returns the corpus.
func (s *Source) Fetch(_ context.Context) (string, error) {
	if s.overridePath == "" {
		return defaultCorpus, nil
	}
	data, err := os.ReadFile(s.overridePath)
	if err != nil {
		return "", fmt.Errorf("read knowledge file %s: %w", s.overridePath, err)
	}
	return string(data), nil
}
