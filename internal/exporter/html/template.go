package html

// SummaryTemplate renders the extraction summary: run metrics, one card per vehicle
// with its L1 blocks and the weighted PETS totals of each block
const SummaryTemplate = `<!DOCTYPE html>
<html lang="zh-CN">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>UVA Matrix Summary - {{.RunDate}}</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }

        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', 'PingFang SC', 'Microsoft YaHei', sans-serif;
            background: #f5f7fa;
            color: #2c3e50;
            line-height: 1.6;
        }

        .container { max-width: 1400px; margin: 0 auto; padding: 20px; }

        header {
            background: linear-gradient(135deg, #1f6feb 0%, #5b3cc4 100%);
            color: white;
            padding: 32px 20px;
            margin-bottom: 24px;
            border-radius: 8px;
        }

        header h1 { font-size: 2em; margin-bottom: 6px; }
        header .meta { opacity: 0.85; font-size: 0.95em; }

        .stats { display: flex; gap: 16px; margin-bottom: 24px; flex-wrap: wrap; }
        .stat {
            background: white;
            border-radius: 8px;
            padding: 16px 24px;
            box-shadow: 0 1px 3px rgba(0, 0, 0, 0.08);
            min-width: 160px;
        }
        .stat .value { font-size: 1.8em; font-weight: 700; color: #1f6feb; }
        .stat .label { color: #7f8c8d; font-size: 0.85em; text-transform: uppercase; }

        .vehicle {
            background: white;
            border-radius: 8px;
            padding: 20px;
            margin-bottom: 20px;
            box-shadow: 0 1px 3px rgba(0, 0, 0, 0.08);
        }
        .vehicle h2 { font-size: 1.3em; margin-bottom: 4px; }
        .vehicle .sheet { color: #7f8c8d; font-size: 0.9em; margin-bottom: 12px; }

        .status { display: inline-block; padding: 2px 10px; border-radius: 4px; font-size: 0.75em; font-weight: 700; color: white; }
        .status-written { background: #2e7d32; }
        .status-empty { background: #f9a825; }
        .status-failed { background: #d32f2f; }

        .tags span {
            display: inline-block;
            background: #eef2ff;
            color: #3949ab;
            border-radius: 4px;
            padding: 1px 8px;
            margin: 0 6px 6px 0;
            font-size: 0.85em;
        }

        table { width: 100%; border-collapse: collapse; font-size: 0.85em; margin-top: 8px; }
        th, td { border: 1px solid #e1e4e8; padding: 6px 8px; text-align: left; }
        th { background: #f0f2f5; font-weight: 600; }
        td.num { text-align: right; font-variant-numeric: tabular-nums; }
        td.zero { color: #bdc3c7; }

        .error { color: #d32f2f; margin-top: 8px; }
        footer { text-align: center; color: #95a5a6; font-size: 0.8em; padding: 20px; }
    </style>
</head>
<body>
<div class="container">
    <header>
        <h1>UVA Matrix Summary</h1>
        <div class="meta">{{.InputPath}} &middot; {{.RunDate}}</div>
    </header>

    <div class="stats">
        <div class="stat"><div class="value">{{.TotalVehicles}}</div><div class="label">Vehicle Sheets</div></div>
        <div class="stat"><div class="value">{{.Written}}</div><div class="label">Written</div></div>
        <div class="stat"><div class="value">{{.TotalEntries}}</div><div class="label">L2 Entries</div></div>
    </div>

    {{range .Vehicles}}
    <section class="vehicle">
        <h2>{{.ID}} <span class="status {{statusClass .Status}}">{{.Status}}</span></h2>
        <div class="sheet">{{.SheetName}}{{if .OutputPath}} &rarr; {{.OutputPath}}{{end}}</div>
        {{if .Error}}<div class="error">{{.Error}}</div>{{end}}
        {{if .Categories}}
        <div class="tags">{{range .Categories}}<span>{{.}}</span>{{end}}</div>
        {{end}}
        {{if .Groups}}
        <table>
            <thead>
                <tr>
                    <th>UV L1</th><th>Category</th><th>L1 Weight</th><th>L2</th><th>L2 Weight Sum</th>
                    {{range $.Dimensions}}<th>{{.Label}}</th>{{end}}
                </tr>
            </thead>
            <tbody>
            {{range .Groups}}
                <tr>
                    <td>{{.L1Name}}</td>
                    <td>{{.L1Category}}</td>
                    <td class="num">{{weight .L1Weight}}</td>
                    <td class="num">{{len .Entries}}</td>
                    <td class="num">{{weight .L2WeightSum}}</td>
                    {{range .WeightedScores}}<td class="num{{if eq . 0.0}} zero{{end}}">{{score .}}</td>{{end}}
                </tr>
            {{end}}
            </tbody>
        </table>
        {{end}}
    </section>
    {{end}}

    <footer>Generated by uva-matrix</footer>
</div>
</body>
</html>
`
