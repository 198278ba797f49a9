package web

import "net/http"

// handleIndex serves the single-page preview frontend. The page is small
// enough to keep inline; there is no frontend build step.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(indexHTML))
}

const indexHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>stmtgen preview</title>
<style>
body { font-family: sans-serif; max-width: 960px; margin: 2rem auto; padding: 0 1rem; }
form { display: grid; grid-template-columns: repeat(4, 1fr); gap: .5rem 1rem; align-items: end; }
label { display: flex; flex-direction: column; font-size: .8rem; gap: .2rem; }
button { grid-column: span 4; padding: .5rem; }
table { border-collapse: collapse; width: 100%; margin-top: 1.5rem; font-size: .85rem; }
th, td { border: 1px solid #bbb; padding: .25rem .5rem; }
td.num { text-align: right; font-variant-numeric: tabular-nums; }
#status { margin-top: 1rem; color: #666; }
#status.error { color: #b00; }
</style>
</head>
<body>
<h1>Statement preview</h1>
<form id="config">
<label>Template <select name="template" id="template"></select></label>
<label>Start <input name="start_date" value="2024-01-01"></label>
<label>End <input name="end_date" value="2024-12-31"></label>
<label>Transactions <input name="transaction_count" value="24"></label>
<label>Opening <input name="opening_balance" value="50000"></label>
<label>Target <input name="target_balance" value="425000"></label>
<label>Min amount <input name="min_amount" value="5000"></label>
<label>Max amount <input name="max_amount" value="90000"></label>
<label>Interest % <input name="interest_rate" value="3.0"></label>
<label>Tax % <input name="tax_rate" value="5.0"></label>
<label>Seed <input name="seed" value=""></label>
<button type="submit">Generate</button>
</form>
<div id="status"></div>
<div id="result"></div>
<script>
const form = document.getElementById('config');
const status = document.getElementById('status');

fetch('/api/templates').then(r => r.json()).then(templates => {
  const select = document.getElementById('template');
  for (const t of templates) {
    const opt = document.createElement('option');
    opt.value = t.id;
    opt.textContent = t.name;
    select.appendChild(opt);
  }
});

form.addEventListener('submit', async e => {
  e.preventDefault();
  const data = Object.fromEntries(new FormData(form));
  data.transaction_count = parseInt(data.transaction_count, 10) || 0;
  if (data.seed) { data.seed = parseInt(data.seed, 10); } else { delete data.seed; }

  status.className = '';
  status.textContent = 'Generating…';

  const resp = await fetch('/api/statement', {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify(data),
  });
  const body = await resp.json();

  if (!resp.ok) {
    status.className = 'error';
    status.textContent = (body.errors || ['request failed']).join('; ');
    return;
  }

  status.textContent = body.converged
    ? 'Converged in ' + body.iterations + ' iteration(s)'
    : 'Did not converge; gap ' + body.gap;
  render(body);
});

function render(body) {
  const rows = body.rows.map(r =>
    '<tr><td>' + r.date.slice(0, 10) + '</td><td>' + r.description + '</td><td>' + (r.reference || '') +
    '</td><td class="num">' + zero(r.debit) + '</td><td class="num">' + zero(r.credit) +
    '</td><td class="num">' + r.balance + '</td></tr>').join('');
  document.getElementById('result').innerHTML =
    '<table><tr><th>Date</th><th>Description</th><th>Ref</th><th>Debit</th><th>Credit</th><th>Balance</th></tr>' +
    rows +
    '<tr><td></td><td><b>Total</b></td><td></td><td class="num"><b>' + body.total_debit +
    '</b></td><td class="num"><b>' + body.total_credit +
    '</b></td><td class="num"><b>' + body.final_balance + '</b></td></tr></table>';
}

function zero(v) { return v === '0' ? '' : v; }

new EventSource('/api/events').addEventListener('reload', () => {
  status.textContent = 'Holiday file changed; regenerate to pick up the new set.';
});
</script>
</body>
</html>
`
