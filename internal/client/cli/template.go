package cli

const statusTemplate = `
=== Critical Maps Status ===

Server:      {{.Server}}
Device:      {{.Device}}
{{- if .LastUpdate.IsZero}}
Last update: never
{{- else}}
Last update: {{.LastUpdate.Format "2006-01-02 15:04:05"}} ({{.Age}} ago)
{{- end}}

Riders ({{len .Riders}}):
{{- range .Riders}}
  {{.DeviceID}}  {{printf "%9.5f %10.5f" .Location.Latitude .Location.Longitude}}
  {{- if .Location.Name}}  {{.Location.Name}}{{end}}
  {{- if eq .DeviceID $.Device}}  (you){{end}}
{{- else}}
  No riders nearby.
{{- end}}

Chat ({{len .Messages}}):
{{- range .Messages}}
  [{{formatTimestamp .Timestamp}}] {{.Message}}
{{- else}}
  No messages.
{{- end}}
`
