package report

import (
	"fmt"
	"html/template"
	"os"
	"time"

	"github.com/samber/lo"

	"github.com/theopenlane/mailaudit/internal/types"
)

// htmlData is the template context for the HTML report
type htmlData struct {
	ScanID          string
	TotalDomains    int
	VulnerableCount int
	TakeoverCount   int
	DurationSeconds string
	Results         []types.DomainResult
	GeneratedAt     string
}

// reportTemplate renders a single self-contained page: a summary block, a
// client-side substring search box, and the full results table
var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>mailaudit Report</title>
<style>
body {
    background-color: #210A32;
    color: #E6D3F2;
    font-family: "Consolas", monospace;
    margin: 20px;
}
h1, h2 {
    text-align: center;
    color: #DABFFF;
}
.analytics, .timestamp {
    margin: 20px auto;
    max-width: 600px;
    background-color: #2A0C3F;
    padding: 15px;
    border-radius: 5px;
}
.analytics h2, .timestamp h2 {
    margin-top: 0;
}
.search-box {
    text-align: center;
    margin: 20px;
}
input[type="text"] {
    padding: 8px;
    font-size: 16px;
    width: 50%;
    border: 1px solid #9C6CD1;
    border-radius: 4px;
    background-color: #2F0B44;
    color: #E6D3F2;
}
table.results-table {
    width: 100%;
    border-collapse: collapse;
    margin: 20px 0;
}
table.results-table th, table.results-table td {
    border: 1px solid #9C6CD1;
    padding: 8px;
    text-align: left;
}
table.results-table th {
    background: #3C1053;
    color: #EEE;
}
table.results-table tr:nth-child(even) {
    background: #2F0B44;
}
</style>
</head>
<body>

<h1>mailaudit - Email Authentication Report</h1>

<div class="analytics">
  <h2>Analytics Summary</h2>
  <ul>
    <li><strong>Scan ID:</strong> {{.ScanID}}</li>
    <li><strong>Total Domains Scanned:</strong> {{.TotalDomains}}</li>
    <li><strong>Vulnerable to Spoofing (Yes):</strong> {{.VulnerableCount}}</li>
    <li><strong>Potential Subdomain Takeovers (Yes):</strong> {{.TakeoverCount}}</li>
    <li><strong>Scan Duration (seconds):</strong> {{.DurationSeconds}}</li>
  </ul>
</div>

<div class="search-box">
    <input type="text" id="searchInput" onkeyup="searchTable()" placeholder="Search by any column...">
</div>

<table class="results-table" id="resultsTable">
  <thead>
    <tr>
      <th>Domain</th>
      <th>SPF</th>
      <th>DKIM</th>
      <th>DMARC</th>
      <th>Vulnerable to Spoofing</th>
      <th>Potential Subdomain Takeover</th>
    </tr>
  </thead>
  <tbody>
{{- range .Results}}
    <tr>
      <td>{{.Domain}}</td>
      <td>{{.SPF}}</td>
      <td>{{.DKIM}}</td>
      <td>{{.DMARC}}</td>
      <td>{{.VulnerableToSpoofing}}</td>
      <td>{{.PotentialSubdomainTakeover}}</td>
    </tr>
{{- end}}
  </tbody>
</table>

<div class="timestamp">
  <h2>Report generated at: {{.GeneratedAt}}</h2>
</div>

<script>
function searchTable() {
  var input, filter, table, tr, td, i, j, txtValue;
  input = document.getElementById("searchInput");
  filter = input.value.toUpperCase();
  table = document.getElementById("resultsTable");
  tr = table.getElementsByTagName("tr");
  for (i = 1; i < tr.length; i++) {
    tr[i].style.display = "none";
    td = tr[i].getElementsByTagName("td");
    for (j = 0; j < td.length; j++) {
      if (td[j]) {
        txtValue = td[j].textContent || td[j].innerText;
        if (txtValue.toUpperCase().indexOf(filter) > -1) {
          tr[i].style.display = "";
          break;
        }
      }
    }
  }
}
</script>
</body>
</html>
`))

// WriteHTML writes the scan results as a timestamped HTML report and
// returns the generated filename
func WriteHTML(rep *types.ScanReport, basePath string) (string, error) {
	if rep == nil {
		return "", ErrNilReport
	}

	now := time.Now()
	path := timestampedPath(basePath, ".html", now)

	data := htmlData{
		ScanID:       rep.ScanID,
		TotalDomains: len(rep.Results),
		VulnerableCount: lo.CountBy(rep.Results, func(r types.DomainResult) bool {
			return r.VulnerableToSpoofing == types.StatusYes
		}),
		TakeoverCount: lo.CountBy(rep.Results, func(r types.DomainResult) bool {
			return r.PotentialSubdomainTakeover == types.StatusYes
		}),
		DurationSeconds: fmt.Sprintf("%.2f", rep.DurationSeconds),
		Results:         rep.Results,
		GeneratedAt:     now.Format("2006-01-02 15:04:05"),
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating html report: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := reportTemplate.Execute(f, data); err != nil {
		return "", fmt.Errorf("rendering html report: %w", err)
	}

	return path, nil
}
