// Package curate manages documents before they join the knowledge base.
//
// New topics start as proposals under <knowledge>/_proposals/. Neither
// health tier inspects that directory, so a proposal can be incomplete
// without failing an audit.
package curate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/dewey-kb/dewey/internal/config"
	"github.com/dewey-kb/dewey/internal/health"
)

// StatusProposal marks a document that has not been accepted yet.
const StatusProposal = "proposal"

// ErrProposalExists is returned when a proposal with the same slug is
// already on disk. Existing proposals are never overwritten.
var ErrProposalExists = errors.New("proposal already exists")

// now is overridable for tests.
var now = time.Now

// Proposal describes a topic someone wants added to the knowledge base.
type Proposal struct {
	Topic      string
	Relevance  string
	ProposedBy string
	Rationale  string
}

// proposalFrontmatter fixes the key order of the written frontmatter.
type proposalFrontmatter struct {
	Topic      string   `yaml:"topic"`
	Status     string   `yaml:"status"`
	ProposedBy string   `yaml:"proposed_by"`
	Proposed   string   `yaml:"proposed"`
	Relevance  string   `yaml:"relevance"`
	Sources    []string `yaml:"sources"`
}

// Slugify turns a topic title into a file name stem: lower case, with
// every run of non-alphanumeric characters collapsed to one hyphen.
func Slugify(topic string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(topic) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}

// Validate checks that the proposal can be written.
func (p Proposal) Validate() error {
	if Slugify(p.Topic) == "" {
		return fmt.Errorf("topic %q has no letters or digits", p.Topic)
	}
	if strings.TrimSpace(p.ProposedBy) == "" {
		return fmt.Errorf("proposed_by is required")
	}
	return nil
}

// ProposalPath returns where the proposal for topic is stored.
func ProposalPath(kbRoot, topic string) string {
	return filepath.Join(config.KnowledgePath(kbRoot), health.ProposalsDir, Slugify(topic)+".md")
}

// CreateProposal writes <knowledge>/_proposals/<slug>.md and returns its
// path. It fails with ErrProposalExists rather than replace a proposal.
func CreateProposal(kbRoot string, p Proposal) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}

	path := ProposalPath(kbRoot, p.Topic)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("creating proposals directory: %w", err)
	}

	content, err := renderProposal(p)
	if err != nil {
		return "", err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if errors.Is(err, os.ErrExist) {
		return "", fmt.Errorf("%s: %w", path, ErrProposalExists)
	}
	if err != nil {
		return "", fmt.Errorf("creating proposal: %w", err)
	}
	if _, err := f.WriteString(content); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("writing proposal: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing proposal: %w", err)
	}
	return path, nil
}

func renderProposal(p Proposal) (string, error) {
	fm, err := yaml.Marshal(proposalFrontmatter{
		Topic:      strings.TrimSpace(p.Topic),
		Status:     StatusProposal,
		ProposedBy: strings.TrimSpace(p.ProposedBy),
		Proposed:   now().Format("2006-01-02"),
		Relevance:  strings.TrimSpace(p.Relevance),
		Sources:    []string{},
	})
	if err != nil {
		return "", fmt.Errorf("serializing proposal frontmatter: %w", err)
	}

	rationale := strings.TrimSpace(p.Rationale)
	if rationale == "" {
		rationale = "_No rationale given._"
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(fm)
	b.WriteString("---\n\n")
	fmt.Fprintf(&b, "# %s\n\n", strings.TrimSpace(p.Topic))
	b.WriteString("## Rationale\n\n")
	b.WriteString(rationale + "\n\n")
	b.WriteString("## Next Steps\n\n")
	b.WriteString("- Gather primary sources\n")
	b.WriteString("- Draft the working document and its reference companion\n")
	b.WriteString("- Move the files into an area once reviewed\n")
	return b.String(), nil
}
