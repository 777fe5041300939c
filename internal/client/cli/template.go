package cli

import (
	"fmt"
	"io"
	"text/template"
)

const usageText = `
Pawkit Client

Usage:
  pawkit [OPTIONS] COMMAND

Options:
  --server URL          Server URL (default: http://localhost:8080)
  --db PATH             Path to local database (default: pawkit.db)
  --workspace ID        Workspace to operate on (default: default)
  --password PASSWORD   Account password (not recommended, use env var or file)
  --password-file PATH  Path to file containing account password
  --version             Show version information

Password Priority (highest to lowest):
  1. PAWKIT_PASSWORD environment variable
  2. --password-file (file path)
  3. --password (command line)
  4. Interactive prompt (fallback)

Commands:
  register              Register new account
  login                 Login to server
  logout                Logout and wipe local state
  status                Show account and sync status
  sync                  Synchronize with server (--push-only, --watch [interval])
  add <type>            Add new entity (card, collection, tag)
  list <type>           List entities (cards, collections, tags)
  get <id>              Show full entity details
  delete <id>           Delete entity (soft delete)
  retry                 Requeue failed operations
  backup [path]         Export workspace to backup storage
  restore <id>          Import entities from a backup

Examples:
  pawkit register
  pawkit login
  pawkit add card
  pawkit list cards
  pawkit get b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5
  pawkit sync
  pawkit sync --watch 30s

  # Non-interactive login (for automation)
  export PAWKIT_PASSWORD='mySecretPassword'
  pawkit login

  pawkit --server https://pawkit.example.com login
`

const cardListTemplate = `
=== Cards ===

{{- if eq (len .) 0 }}
No cards found.

Use 'pawkit add card' to save your first bookmark.

{{ else }}
Found {{len .}} card(s):

{{- range . }}
- {{ .Title }}
   ID:     {{ .ID }}
   URL:    {{ .URL }}
   {{- if .Tags }}
   Tags:   {{ .Tags }}
   {{- end }}
   {{- if .Conflict }}
   ⚠️  Conflict pair with {{ .Conflict }}
   {{- end }}
   Status: {{ .Status }}

{{- end }}
Use 'pawkit get <id>' to view full details.
{{- end }}
`

const collectionListTemplate = `
=== Collections ===

{{- if eq (len .) 0 }}
No collections found.

Use 'pawkit add collection' to create your first collection.

{{ else }}
Found {{len .}} collection(s):

{{- range . }}
- {{ .Name }}
   ID:     {{ .ID }}
   Slug:   {{ .Slug }}
   {{- if .Parent }}
   Parent: {{ .Parent }}
   {{- end }}
   Status: {{ .Status }}

{{- end }}
Use 'pawkit get <id>' to view full details.
{{- end }}
`

const tagListTemplate = `
=== Tags ===

{{- if eq (len .) 0 }}
No tags found.

Use 'pawkit add tag' to create your first tag.

{{ else }}
Found {{len .}} tag(s):

{{- range . }}
- {{ .Name }}
   ID:     {{ .ID }}
   {{- if .Color }}
   Color:  {{ .Color }}
   {{- end }}
   Status: {{ .Status }}

{{- end }}
{{- end }}
`

const cardDetailsTemplate = `
=== Card Details ===

Title:       {{.Title}}
ID:          {{.ID}}
URL:         {{.URL}}
{{- if .Description }}
Description: {{.Description}}
{{- end }}
{{- if .Collection }}
Collection:  {{.Collection}}
{{- end }}
{{- if .Tags }}
Tags:        {{.Tags}}
{{- end }}
Created:     {{.Created}}
Modified:    {{.Modified}}
Version:     {{.Version}}
Status:      {{.Status}}
{{- if .LocalOnly }}

This card is excluded from synchronization (local-only).
{{- end }}
{{- if .Conflict }}

⚠️  Conflict pair with {{.Conflict}}
Review both copies and delete the one you do not need.
{{- end }}
`

const collectionDetailsTemplate = `
=== Collection Details ===

Name:     {{.Name}}
ID:       {{.ID}}
Slug:     {{.Slug}}
{{- if .Parent }}
Parent:   {{.Parent}}
{{- end }}
Created:  {{.Created}}
Modified: {{.Modified}}
Status:   {{.Status}}
{{- if .LocalOnly }}

This collection is excluded from synchronization (local-only).
{{- end }}
`

const tagDetailsTemplate = `
=== Tag Details ===

Name:     {{.Name}}
ID:       {{.ID}}
{{- if .Color }}
Color:    {{.Color}}
{{- end }}
Created:  {{.Created}}
Modified: {{.Modified}}
Status:   {{.Status}}
`

// renderTemplate выполняет шаблон в терминал
func renderTemplate(w io.Writer, text string, data any) error {
	tmpl, err := template.New("render").Parse(text)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render template: %w", err)
	}
	return nil
}
