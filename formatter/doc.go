package formatter

import (
	"html/template"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nepdocs/stmtgen/statement"
)

// Document carries a statement result plus the header metadata a rendered
// bank statement shows.
type Document struct {
	Institution string
	Currency    string
	StartDate   time.Time
	EndDate     time.Time
	Result      *statement.Result
}

// docTemplate renders a statement as HTML that Microsoft Word opens as a
// .doc file. The office XML namespaces on the html element are what make
// Word accept the file; browsers ignore them.
var docTemplate = template.Must(template.New("doc").Funcs(template.FuncMap{
	"date": func(t time.Time) string {
		return t.Format(dateFormat)
	},
	"cell": func(d decimal.Decimal) string {
		if d.IsZero() {
			return ""
		}
		return d.StringFixed(2)
	},
	"fixed": func(d decimal.Decimal) string {
		return d.StringFixed(2)
	},
}).Parse(`<html xmlns:o="urn:schemas-microsoft-com:office:office" xmlns:w="urn:schemas-microsoft-com:office:word" xmlns="http://www.w3.org/TR/REC-html40">
<head>
<meta charset="utf-8">
<title>{{.Institution}} - Account Statement</title>
<style>
body { font-family: "Times New Roman", serif; font-size: 11pt; }
h1 { font-size: 14pt; text-align: center; margin-bottom: 2pt; }
p.period { text-align: center; margin-top: 0; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #444; padding: 3pt 5pt; }
th { background: #eee; }
td.num { text-align: right; white-space: nowrap; }
tr.totals td { font-weight: bold; }
</style>
</head>
<body>
<h1>{{.Institution}}</h1>
<p class="period">Account Statement from {{date .StartDate}} to {{date .EndDate}} ({{.Currency}})</p>
<table>
<tr><th>Date</th><th>Description</th><th>Ref No.</th><th>Debit</th><th>Credit</th><th>Balance</th></tr>
{{range .Result.Rows}}<tr><td>{{date .Date}}</td><td>{{.Description}}</td><td>{{.Reference}}</td><td class="num">{{cell .Debit}}</td><td class="num">{{cell .Credit}}</td><td class="num">{{fixed .Balance}}</td></tr>
{{end}}<tr class="totals"><td></td><td>Total</td><td></td><td class="num">{{fixed .Result.TotalDebit}}</td><td class="num">{{fixed .Result.TotalCredit}}</td><td class="num">{{fixed .Result.FinalBalance}}</td></tr>
</table>
</body>
</html>
`))

// WriteDoc renders doc as a Word-compatible HTML document.
func WriteDoc(w io.Writer, doc *Document) error {
	return docTemplate.Execute(w, doc)
}
