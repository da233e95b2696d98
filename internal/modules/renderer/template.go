package renderer

// Fields are interpolated as-is; the catalog is a trusted first-party source.
const reportTemplate = `<html><head>
<meta charset="utf-8">
<style>
    body {
        font-family: 'PingFang SC', 'Helvetica Neue', Arial, sans-serif;
        color: #333;
        max-width: 90%;
        margin: 0 auto;
        background-color: #f4f7f6;
        padding: 10px;
    }
    .container {
        background-color: #ffffff;
        border-radius: 12px;
        box-shadow: 0 4px 12px rgba(0,0,0,0.05);
        padding: 10px;
    }
    .device-header { background: #e8f0ff; color: #004d99; padding: 10px 15px; border-radius: 8px; margin: 25px 0 15px 0; font-size: 18px; font-weight: bold; border-left: 5px solid #007bff; }
    .card { border-bottom: 1px solid #eee; padding: 15px 0; display: flex; align-items: flex-start; }
    .card:last-child { border-bottom: none; }
    .cover { object-fit: cover; margin-right: 20px; background-color: #f0f0f0; border: 1px solid #ddd; }
    .content { flex: 1; }
    .title { font-size: 16px; font-weight: 600; margin: 0 0 5px 0; color: #333; }
    .meta { font-size: 13px; color: #666; line-height: 1.6; }
    .stat-badge { display: inline-block; padding: 3px 8px; background: #eaf8f4; color: #00a680; border-radius: 12px; font-weight: bold; font-size: 11px; margin-right: 10px; }
    .signature { text-align: center; font-size: 11px; color: #a0a0a0; margin-top: 30px; padding-top: 15px; border-top: 1px solid #eee; }
</style>
</head><body><div class="container">
<h2 style="text-align:center; color: #34495e; margin-bottom: 25px;">⌚ New Watch Faces Daily Report ({{.Date}})</h2>
{{- range .Sections}}
<div class="device-header">📱 {{.Name}} (id: {{.ID}})</div>
{{- $style := .ImageStyle}}
{{- range .Cards}}
<div class="card">
    <img src="{{.Preview}}" class="cover" style="{{$style}}" alt="{{.Name}}">
    <div class="content">
        <p class="title">{{.Name}}</p>
        <div class="meta">
            <span class="stat-badge author">Author: {{.Nickname}}</span>
            <span class="stat-badge updated" style="background: #fff0e6; color: #e67e22;">Updated: {{.Updated}}</span>
            <p style="margin: 5px 0 0 0;">
                📥 Downloads: <strong class="downloads" style="color: #007bff;">{{.Downloads}}</strong> | 👀 Views: <strong class="views" style="color: #007bff;">{{.Views}}</strong>
            </p>
        </div>
    </div>
</div>
{{- end}}
{{- end}}
</div>
<p class="signature">Generated by watchface-monitor</p>
</body>
</html>
`
