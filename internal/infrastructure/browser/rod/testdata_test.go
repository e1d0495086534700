package rod

const (
	BasicHTML = `<!DOCTYPE html>
<html>
<head><title>Test Page</title></head>
<body>
	<h1>Hello World</h1>
</body>
</html>`

	SearchResultsHTML = `<!DOCTYPE html>
<html>
<body>
	<table class="table">
		<tr><td><a href="/city">Berlin, DE</a></td></tr>
	</table>
</body>
</html>`

	CurrentConditionsHTML = `<!DOCTYPE html>
<html>
<body>
	<div class="current-temp"><span class="heading">21°C</span></div>
</body>
</html>`

	// The leading space and the hidden child are part of the text content.
	HiddenChildTemperatureHTML = `<!DOCTYPE html>
<html>
<body>
	<div class="current-temp"><span> 21<i hidden>x</i>°C</span></div>
</body>
</html>`

	// The overlay sits above the link and swallows every click.
	CoveredLinkHTML = `<!DOCTYPE html>
<html>
<body>
	<table class="table">
		<tr><td><a href="/city">Berlin, DE</a></td></tr>
	</table>
	<div style="position:fixed;top:0;left:0;width:100%;height:100%;background:#fff;z-index:10"></div>
</body>
</html>`

	// The iframe finishes loading long before the slow image of the main document.
	FramedSlowImageHTML = `<!DOCTYPE html>
<html>
<body>
	<iframe srcdoc="<p>inner</p>"></iframe>
	<img src="/slow.png">
</body>
</html>`

	// The table is attached late to exercise waiting.
	DelayedTableHTML = `<!DOCTYPE html>
<html>
<body>
	<script>
		setTimeout(function() {
			var t = document.createElement('table');
			t.id = 'wt-ext';
			t.innerHTML = '<tbody><tr><th>Mon</th><td></td><td>20 / 12 °C</td></tr></tbody>';
			document.body.appendChild(t);
		}, 300);
	</script>
</body>
</html>`
)
