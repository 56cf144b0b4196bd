// Package rendering assembles the README documents of the awesome lists.
package rendering

import (
	"fmt"
	"path/filepath"

	"github.com/italia-opensource/awesome-italia-opensource/internal/config"
	"github.com/italia-opensource/awesome-italia-opensource/internal/markdown"
)

// OutputFile is the name of the generated document inside the output directory.
const OutputFile = "README"

const (
	websiteLabel = "italia-opensource.github.io"
	websiteURL   = "https://italia-opensource.github.io/awesome-italia-opensource/"

	maintainer = `- **[Fabrizio Cafolla](https://github.com/FabrizioCafolla)**
<a href="https://www.buymeacoffee.com/fabriziocafolla" target="_blank"><img  align="right" src="https://www.buymeacoffee.com/assets/img/custom_images/orange_img.png" alt="Buy Me A Coffee" style="height: 30px !important; width: 150px !important" ></a>`

	guidelinesText  = "Please read the contribution guidelines before opening a pull request or contributing to this repository"
	guidelinesLabel = "contribution guidelines"

	licenseText = "The project is made available under the GPL-3.0 license. See the `LICENSE` file for more information."
)

// Section supplies the domain-specific parts of a README.
type Section interface {
	// Len is the number of list entries, shown in the title badge.
	Len() int
	// Header writes the introduction of the list.
	Header(doc *markdown.Document, identity config.Identity)
	// Content writes the list itself.
	Content(doc *markdown.Document) error
}

// Readme renders one domain document: title, header, content and footer.
type Readme struct {
	name       string
	identity   config.Identity
	outputPath string
	section    Section
	doc        *markdown.Document
}

// NewReadme creates a readme that will be written to outputDir/README.
func NewReadme(name string, section Section, outputDir string, identity config.Identity) *Readme {
	return &Readme{
		name:       name,
		identity:   identity,
		outputPath: filepath.Join(outputDir, OutputFile),
		section:    section,
		doc:        markdown.New(),
	}
}

// OutputPath is the file written by Output.
func (r *Readme) OutputPath() string {
	return r.outputPath
}

// Document returns the document assembled by the last Build.
func (r *Readme) Document() *markdown.Document {
	return r.doc
}

// Build assembles the document from scratch.
func (r *Readme) Build() error {
	if r.section == nil {
		return &UnimplementedHookError{Hook: "section"}
	}

	r.doc = markdown.New()
	r.title(r.section.Len())
	r.section.Header(r.doc, r.identity)
	if err := r.section.Content(r.doc); err != nil {
		return &RenderError{Message: fmt.Sprintf("failed to build %s content", r.name), Cause: err}
	}
	r.footer()
	return nil
}

// Output writes the document, replacing any previous README.
func (r *Readme) Output() error {
	if err := r.doc.WriteFile(r.outputPath); err != nil {
		return &RenderError{Message: fmt.Sprintf("failed to output %s", r.outputPath), Cause: err}
	}
	return nil
}

func (r *Readme) title(entries int) {
	r.doc.AddHeader(r.name+" | Italia Opensource", 1)
	r.doc.AddParagraph(fmt.Sprintf(`
		<img src='https://img.shields.io/badge/list-%d-green'>
		<img src='https://img.shields.io/github/last-commit/%s/main'>
	`, entries, r.identity.FullName()))
}

func (r *Readme) footer() {
	r.doc.AddHeader("Contributors", 3)
	r.doc.AddParagraph(fmt.Sprintf(`
		<a href="%s/graphs/contributors">
			<img src="https://contrib.rocks/image?repo=%s" />
		</a>
	`, r.identity.URL(), r.identity.FullName()))

	r.doc.AddHeader("License", 3)
	r.doc.AddParagraph(licenseText)
}

// intro writes the paragraphs shared by every section header.
func intro(doc *markdown.Document, identity config.Identity, paragraphs ...string) {
	for _, p := range paragraphs {
		doc.AddParagraph(p)
	}
	doc.AddParagraph(guidelinesText).
		InsertLink(guidelinesLabel, identity.URL()+"/blob/main/CONTRIBUTING.md")

	doc.AddHeader("Mantained by", 3)
	doc.AddParagraph(maintainer)
}

// listHeading writes the section title, the website link and the list heading.
func listHeading(doc *markdown.Document, title string) {
	doc.AddHeader(title, 3)
	doc.AddHeader("Website view", 4)
	doc.AddParagraph(websiteLabel).InsertLink(websiteLabel, websiteURL)
	doc.AddHeader("List", 4)
}
