// package formatter renders a list and its tasks in export formats (CSV, Markdown, plain text, YAML, JSON, PDF)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"gopkg.in/yaml.v3"

	"github.com/desertthunder/tasklists/internal/models"
	"github.com/desertthunder/tasklists/internal/shared"
)

// Format names an export format.
type Format string

const (
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
	FormatText     Format = "text"
	FormatYAML     Format = "yaml"
	FormatJSON     Format = "json"
	FormatPDF      Format = "pdf"
)

// Formats lists every supported [Format].
var Formats = []Format{FormatCSV, FormatMarkdown, FormatText, FormatYAML, FormatJSON, FormatPDF}

var formatAliases = map[string]Format{
	"md":  FormatMarkdown,
	"txt": FormatText,
	"yml": FormatYAML,
}

// ParseFormat resolves a format name or common extension alias, ignoring case.
func ParseFormat(raw string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	if f, ok := formatAliases[name]; ok {
		return f, nil
	}
	for _, f := range Formats {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: unknown export format %q", shared.ErrInvalidInput, raw)
}

// ContentType returns the MIME type served for f.
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatMarkdown:
		return "text/markdown; charset=utf-8"
	case FormatYAML:
		return "application/yaml"
	case FormatJSON:
		return "application/json"
	case FormatPDF:
		return "application/pdf"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Extension returns the file extension, without the dot, used for f.
func (f Format) Extension() string {
	switch f {
	case FormatMarkdown:
		return "md"
	case FormatText:
		return "txt"
	default:
		return string(f)
	}
}

// Export renders list in format f and reports the content type to serve it with.
func Export(list models.List, f Format) ([]byte, string, error) {
	var (
		data []byte
		err  error
	)
	switch f {
	case FormatCSV:
		data, err = ExportToCSV(list)
	case FormatMarkdown:
		data, err = ExportToMarkdown(list)
	case FormatText:
		data, err = ExportToText(list)
	case FormatYAML:
		data, err = ExportToYAML(list)
	case FormatJSON:
		data, err = shared.MarshalJSON(list, true)
	case FormatPDF:
		data, err = ExportToPDF(list)
	default:
		return nil, "", fmt.Errorf("%w: unknown export format %q", shared.ErrInvalidInput, f)
	}
	if err != nil {
		return nil, "", err
	}
	return data, f.ContentType(), nil
}

// ExportToCSV converts a list's tasks to CSV with columns: ID, Title, Description, Status, Priority, Created, Updated
func ExportToCSV(list models.List) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Title", "Description", "Status", "Priority", "Created", "Updated"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, task := range list.Tasks {
		record := []string{
			strconv.Itoa(task.ID),
			task.Title,
			task.Description,
			string(task.Status),
			string(task.Priority),
			task.CreatedAt.Format(time.RFC3339),
			task.UpdatedAt.Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

func checkbox(s models.Status) string {
	switch s {
	case models.StatusDone:
		return "x"
	case models.StatusInProgress:
		return "~"
	default:
		return " "
	}
}

func doneCount(list models.List) int {
	n := 0
	for _, t := range list.Tasks {
		if t.Status == models.StatusDone {
			n++
		}
	}
	return n
}

// ExportToMarkdown converts a list to Markdown with a checklist of its tasks
func ExportToMarkdown(list models.List) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "# %s\n\n", list.Name)

	if list.Description != "" {
		fmt.Fprintf(&buf, "**Description**: %s\n\n", list.Description)
	}

	fmt.Fprintf(&buf, "**Tasks**: %d\n", len(list.Tasks))
	fmt.Fprintf(&buf, "**Done**: %d/%d\n\n", doneCount(list), len(list.Tasks))

	buf.WriteString("## Tasks\n\n")
	for i, task := range list.Tasks {
		fmt.Fprintf(&buf, "%d. [%s] %s (%s, %s)\n", i+1, checkbox(task.Status), task.Title, task.Status, task.Priority)
		if task.Description != "" {
			fmt.Fprintf(&buf, "   %s\n", task.Description)
		}
	}

	return buf.Bytes(), nil
}

// ExportToText converts a list to plain text
func ExportToText(list models.List) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "List: %s\n", list.Name)
	if list.Description != "" {
		fmt.Fprintf(&buf, "Description: %s\n", list.Description)
	}
	fmt.Fprintf(&buf, "Tasks: %d\n\n", len(list.Tasks))

	for i, task := range list.Tasks {
		fmt.Fprintf(&buf, "%d. [%s] %s (%s)\n", i+1, task.Status, task.Title, task.Priority)
	}

	return buf.Bytes(), nil
}

// ExportToYAML converts a list and its tasks to a YAML document
func ExportToYAML(list models.List) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(list); err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportToPDF renders a one-column report of the list and its tasks
func ExportToPDF(list models.List) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(list.Name, true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, tr(list.Name), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	if list.Description != "" {
		pdf.MultiCell(0, 6, tr(list.Description), "", "L", false)
	}
	pdf.CellFormat(0, 6, fmt.Sprintf("%d tasks, %d done", len(list.Tasks), doneCount(list)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	for i, task := range list.Tasks {
		pdf.SetFont("Arial", "B", 11)
		line := fmt.Sprintf("%d. [%s] %s", i+1, task.Status, task.Title)
		pdf.MultiCell(0, 6, tr(line), "", "L", false)

		pdf.SetFont("Arial", "", 9)
		meta := fmt.Sprintf("priority %s, updated %s", task.Priority, task.UpdatedAt.Format("2006-01-02 15:04"))
		pdf.MultiCell(0, 5, meta, "", "L", false)
		if task.Description != "" {
			pdf.MultiCell(0, 5, tr(task.Description), "", "L", false)
		}
		pdf.Ln(2)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

type listMetadata struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	TaskCount   int       `json:"task_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToMetadataJSON generates a JSON representation of list metadata (without tasks)
func ToMetadataJSON(list models.List) ([]byte, error) {
	return shared.MarshalJSON(listMetadata{
		ID:          list.ID,
		Name:        list.Name,
		Description: list.Description,
		TaskCount:   len(list.Tasks),
		CreatedAt:   list.CreatedAt,
		UpdatedAt:   list.UpdatedAt,
	}, true)
}

// DefaultBase returns the base filename used when no output path is given.
func DefaultBase(list models.List) string {
	return fmt.Sprintf("list_%d", list.ID)
}

// CSVExportResult contains the paths of files created by WriteCSVExport
type CSVExportResult struct {
	TasksFile    string
	MetadataFile string
}

// WriteCSVExport exports a list to CSV format with accompanying metadata JSON file.
//
// Defaults to list_{id} as the base filename & creates {base}_tasks.csv and {base}_metadata.json
func WriteCSVExport(list models.List, baseFilepath string) (*CSVExportResult, error) {
	if baseFilepath == "" {
		baseFilepath = DefaultBase(list)
	}

	csvData, err := ExportToCSV(list)
	if err != nil {
		return nil, fmt.Errorf("failed to generate CSV: %w", err)
	}

	tasksFile := baseFilepath + "_tasks.csv"
	if err := os.WriteFile(tasksFile, csvData, 0644); err != nil {
		return nil, fmt.Errorf("failed to write CSV file: %w", err)
	}

	metadataJSON, err := ToMetadataJSON(list)
	if err != nil {
		return nil, fmt.Errorf("failed to generate metadata JSON: %w", err)
	}

	metadataFile := baseFilepath + "_metadata.json"
	if err := os.WriteFile(metadataFile, metadataJSON, 0644); err != nil {
		return nil, fmt.Errorf("failed to write metadata file: %w", err)
	}

	return &CSVExportResult{
		TasksFile:    tasksFile,
		MetadataFile: metadataFile,
	}, nil
}

// WriteMarkdownExport exports a list to {outputDir}/README.md, creating the directory.
//
// Directory name defaults to list_{id}.
func WriteMarkdownExport(list models.List, outputDir string) (string, error) {
	if outputDir == "" {
		outputDir = DefaultBase(list)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	mdData, err := ExportToMarkdown(list)
	if err != nil {
		return "", fmt.Errorf("failed to generate Markdown: %w", err)
	}

	mdFile := filepath.Join(outputDir, "README.md")
	if err := os.WriteFile(mdFile, mdData, 0644); err != nil {
		return "", fmt.Errorf("failed to write Markdown file: %w", err)
	}

	return mdFile, nil
}

// WriteFileExport renders list in format f to a single file.
//
// Defaults to list_{id}.{ext} as the filename.
func WriteFileExport(list models.List, f Format, path string) (string, error) {
	if path == "" {
		path = DefaultBase(list) + "." + f.Extension()
	}

	data, _, err := Export(list, f)
	if err != nil {
		return "", fmt.Errorf("failed to generate %s: %w", f, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s file: %w", f, err)
	}

	return path, nil
}

// WriteExport writes list in format f and returns every file it created.
//
// CSV writes a tasks file plus metadata, Markdown writes a directory, everything else writes one file.
func WriteExport(list models.List, f Format, path string) ([]string, error) {
	switch f {
	case FormatCSV:
		res, err := WriteCSVExport(list, path)
		if err != nil {
			return nil, err
		}
		return []string{res.TasksFile, res.MetadataFile}, nil
	case FormatMarkdown:
		file, err := WriteMarkdownExport(list, path)
		if err != nil {
			return nil, err
		}
		return []string{file}, nil
	default:
		file, err := WriteFileExport(list, f, path)
		if err != nil {
			return nil, err
		}
		return []string{file}, nil
	}
}
