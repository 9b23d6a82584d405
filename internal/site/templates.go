package site

// CSS returns the shared stylesheet, served as /style.css.
func CSS() string { return cssContent }

// JS returns the shared client script, served as /script.js.
func JS() string { return jsContent }

// pageTemplate is the Go html/template shared by every page.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} — {{.SiteTitle}}</title>
  <link rel="stylesheet" href="{{.BasePath}}style.css">
</head>
<body data-base="{{.BasePath}}">
  <nav class="sidebar" id="sidebar">
    <div class="sidebar-header">
      <input type="text" id="search-input" placeholder="Search lessons..." autocomplete="off">
    </div>
    <div class="sidebar-results" id="search-results"></div>
    <div class="sidebar-nav" id="sidebar-nav">
      {{.NavHTML}}
    </div>
  </nav>
  <main class="content">
    <button class="menu-toggle" id="menu-toggle" aria-label="Toggle sidebar">☰</button>
    <article class="page-content">
      {{.Content}}
    </article>
  </main>
  <script src="{{.BasePath}}script.js"></script>
{{- if .LiveReload}}
  <script>
    (function () {
      var proto = location.protocol === "https:" ? "wss://" : "ws://";
      var sock = new WebSocket(proto + location.host + "/ws/reload");
      sock.onmessage = function (ev) {
        var msg = JSON.parse(ev.data);
        if (msg.type === "reload") location.reload();
      };
    })();
  </script>
{{- end}}
</body>
</html>`

// cssContent is the stylesheet written as style.css into every build.
const cssContent = `:root {
  --bg: #ffffff;
  --fg: #1f2328;
  --muted: #57606a;
  --border: #d0d7de;
  --sidebar-bg: #f6f8fa;
  --accent: #0969da;
  --accent-soft: #ddf4ff;
}

* { box-sizing: border-box; }

body {
  margin: 0;
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
  color: var(--fg);
  background: var(--bg);
  display: flex;
}

.sidebar {
  width: 300px;
  flex-shrink: 0;
  height: 100vh;
  position: sticky;
  top: 0;
  overflow-y: auto;
  background: var(--sidebar-bg);
  border-right: 1px solid var(--border);
  padding: 1rem;
}

.sidebar-header input {
  width: 100%;
  padding: 0.4rem 0.6rem;
  border: 1px solid var(--border);
  border-radius: 6px;
  font-size: 0.9rem;
}

.sidebar ul {
  list-style: none;
  margin: 0.25rem 0;
  padding-left: 0;
}

.sidebar li.module { margin-top: 1rem; }

.sidebar .module-title {
  display: block;
  font-weight: 600;
  font-size: 0.85rem;
  text-transform: uppercase;
  letter-spacing: 0.03em;
  color: var(--muted);
  margin-bottom: 0.25rem;
}

.sidebar li.lesson a {
  display: block;
  padding: 0.25rem 0.5rem;
  border-radius: 6px;
  color: var(--fg);
  text-decoration: none;
  font-size: 0.95rem;
}

.sidebar li.lesson a:hover { background: var(--accent-soft); }

.sidebar li.lesson a.active {
  background: var(--accent-soft);
  color: var(--accent);
  font-weight: 600;
}

.sidebar ul.topics {
  margin: 0.15rem 0 0.4rem;
  padding-left: 1.4rem;
  border-left: 2px solid var(--border);
}

.sidebar li.topic {
  font-size: 0.85rem;
  color: var(--muted);
  padding: 0.1rem 0;
}

.sidebar .home-link a {
  font-weight: 700;
  font-size: 1.05rem;
  color: var(--fg);
  text-decoration: none;
}

.sidebar-results { margin-top: 0.5rem; }

.sidebar-results .result a {
  display: block;
  padding: 0.3rem 0.5rem;
  border-radius: 6px;
  text-decoration: none;
  color: var(--fg);
}

.sidebar-results .result a:hover { background: var(--accent-soft); }

.sidebar-results .result .module-name {
  display: block;
  font-size: 0.75rem;
  color: var(--muted);
}

.content {
  flex: 1;
  min-width: 0;
  padding: 2rem 3rem;
  max-width: 56rem;
}

.menu-toggle { display: none; }

.page-content pre {
  background: var(--sidebar-bg);
  border: 1px solid var(--border);
  border-radius: 6px;
  padding: 1rem;
  overflow-x: auto;
}

.page-content code { font-size: 0.9em; }

.page-content h1 { border-bottom: 1px solid var(--border); padding-bottom: 0.3rem; }

.module-overview ul { padding-left: 1.2rem; }

@media (max-width: 768px) {
  .sidebar {
    position: fixed;
    left: -320px;
    transition: left 0.2s ease;
    z-index: 10;
  }
  .sidebar.open { left: 0; }
  .menu-toggle {
    display: block;
    background: none;
    border: 1px solid var(--border);
    border-radius: 6px;
    padding: 0.3rem 0.6rem;
    margin-bottom: 1rem;
    cursor: pointer;
  }
  .content { padding: 1rem; }
}
`

// jsContent is the client script written as script.js: sidebar toggle plus
// search over search-index.json.
const jsContent = `(function () {
  var toggle = document.getElementById("menu-toggle");
  var sidebar = document.getElementById("sidebar");
  if (toggle && sidebar) {
    toggle.addEventListener("click", function () {
      sidebar.classList.toggle("open");
    });
  }

  var base = document.body.getAttribute("data-base") || "";
  var input = document.getElementById("search-input");
  var results = document.getElementById("search-results");
  var navEl = document.getElementById("sidebar-nav");
  if (!input || !results || !navEl) return;

  var index = null;
  function loadIndex() {
    if (index !== null) return Promise.resolve(index);
    return fetch(base + "search-index.json")
      .then(function (r) { return r.json(); })
      .then(function (data) { index = data; return index; })
      .catch(function () { index = []; return index; });
  }

  function hrefFor(entry) {
    if (base === "/") return entry.path;
    return base + entry.path.replace(/^\//, "");
  }

  function render(matches) {
    results.innerHTML = "";
    matches.slice(0, 10).forEach(function (m) {
      var div = document.createElement("div");
      div.className = "result";
      var a = document.createElement("a");
      a.href = hrefFor(m.entry);
      a.textContent = m.entry.title;
      var mod = document.createElement("span");
      mod.className = "module-name";
      mod.textContent = m.entry.module;
      a.appendChild(mod);
      div.appendChild(a);
      results.appendChild(div);
    });
  }

  input.addEventListener("input", function () {
    var q = input.value.trim().toLowerCase();
    if (q === "") {
      results.innerHTML = "";
      navEl.style.display = "";
      return;
    }
    loadIndex().then(function (entries) {
      var matches = [];
      entries.forEach(function (entry) {
        var score = 0;
        if (entry.title.toLowerCase().indexOf(q) !== -1) score += 3;
        (entry.topics || []).forEach(function (topic) {
          if (topic.toLowerCase().indexOf(q) !== -1) score += 2;
        });
        if ((entry.content || "").toLowerCase().indexOf(q) !== -1) score += 1;
        if (score > 0) matches.push({ entry: entry, score: score });
      });
      matches.sort(function (a, b) { return b.score - a.score; });
      navEl.style.display = "none";
      render(matches);
    });
  });
})();
`
