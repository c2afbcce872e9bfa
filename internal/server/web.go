package server

import (
	"net/http"
)

func HandleDashboard(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(dashboardHTML))
}

const dashboardHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <title>Codeforces Explorer</title>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <link rel="icon" href="data:image/svg+xml,<svg xmlns=%22http://www.w3.org/2000/svg%22 viewBox=%220 0 100 100%22><text y=%22.9em%22 font-size=%2290%22>🏆</text></svg>">
    <script src="https://cdn.jsdelivr.net/npm/chart.js@4.4.0/dist/chart.umd.min.js"></script>
    <style>
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: 'Inter', -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
            background: #0f172a;
            color: #e2e8f0;
            min-height: 100vh;
            padding: 2rem 1rem;
        }

        .container {
            max-width: 1200px;
            margin: 0 auto;
        }

        header {
            text-align: center;
            margin-bottom: 2rem;
        }

        h1 {
            font-size: 3rem;
            font-weight: 800;
            background: linear-gradient(135deg, #3b82f6 0%, #8b5cf6 50%, #ec4899 100%);
            -webkit-background-clip: text;
            -webkit-text-fill-color: transparent;
            background-clip: text;
            margin-bottom: 0.5rem;
        }

        .subtitle {
            font-size: 1.125rem;
            color: #94a3b8;
        }

        .status-bar {
            display: flex;
            align-items: center;
            justify-content: center;
            gap: 0.5rem;
            margin: 1.5rem 0;
            padding: 0.75rem;
            background: rgba(16, 185, 129, 0.1);
            border: 1px solid rgba(16, 185, 129, 0.2);
            border-radius: 0.5rem;
            font-size: 0.875rem;
            color: #10b981;
        }

        .live-dot {
            width: 8px;
            height: 8px;
            background: #10b981;
            border-radius: 50%;
            animation: pulse 2s ease-in-out infinite;
        }

        @keyframes pulse {
            0%, 100% { opacity: 1; transform: scale(1); }
            50% { opacity: 0.5; transform: scale(1.1); }
        }

        .tabs {
            display: flex;
            justify-content: center;
            gap: 0.5rem;
            margin-bottom: 2rem;
            flex-wrap: wrap;
        }

        .tab-btn {
            padding: 0.6rem 1.5rem;
            background: #1e293b;
            border: 1px solid #334155;
            border-radius: 0.5rem;
            color: #94a3b8;
            font-size: 0.95rem;
            cursor: pointer;
            transition: all 0.15s;
        }

        .tab-btn:hover {
            color: #e2e8f0;
            border-color: #475569;
        }

        .tab-btn.active {
            background: #3b82f6;
            border-color: #3b82f6;
            color: white;
        }

        .panel {
            display: none;
        }

        .panel.active {
            display: block;
        }

        .search-row {
            display: flex;
            gap: 0.75rem;
            justify-content: center;
            margin-bottom: 1.5rem;
            flex-wrap: wrap;
        }

        input, select {
            padding: 0.6rem 1rem;
            background: #1e293b;
            border: 1px solid #334155;
            border-radius: 0.5rem;
            color: #e2e8f0;
            font-size: 0.95rem;
            min-width: 200px;
        }

        input:focus, select:focus {
            outline: none;
            border-color: #3b82f6;
        }

        button.action {
            padding: 0.6rem 1.5rem;
            background: #3b82f6;
            border: none;
            border-radius: 0.5rem;
            color: white;
            font-size: 0.95rem;
            cursor: pointer;
        }

        button.action:hover {
            background: #2563eb;
        }

        .card {
            background: #1e293b;
            border: 1px solid #334155;
            border-radius: 0.75rem;
            padding: 1.5rem;
            margin-bottom: 1.5rem;
        }

        .card h2 {
            font-size: 1.25rem;
            font-weight: 600;
            margin-bottom: 1rem;
        }

        .stats-grid {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(180px, 1fr));
            gap: 1rem;
            margin-bottom: 1.5rem;
        }

        .stat-card {
            background: #1e293b;
            border: 1px solid #334155;
            border-radius: 0.75rem;
            padding: 1.25rem;
            text-align: center;
        }

        .stat-value {
            font-size: 2rem;
            font-weight: 700;
            color: #60a5fa;
        }

        .stat-label {
            font-size: 0.8rem;
            color: #94a3b8;
            margin-top: 0.4rem;
            text-transform: uppercase;
            letter-spacing: 0.05em;
        }

        table {
            width: 100%;
            border-collapse: collapse;
        }

        th {
            text-align: left;
            padding: 0.75rem;
            font-size: 0.8rem;
            text-transform: uppercase;
            letter-spacing: 0.05em;
            color: #94a3b8;
            border-bottom: 1px solid #334155;
        }

        td {
            padding: 0.75rem;
            border-bottom: 1px solid #1e293b;
            font-size: 0.95rem;
        }

        tr:hover td {
            background: rgba(59, 130, 246, 0.05);
        }

        .tag {
            display: inline-block;
            padding: 0.15rem 0.5rem;
            margin: 0.1rem;
            background: rgba(59, 130, 246, 0.15);
            border-radius: 0.3rem;
            font-size: 0.75rem;
            color: #93c5fd;
        }

        .pager {
            display: flex;
            justify-content: center;
            align-items: center;
            gap: 1rem;
            margin-top: 1.5rem;
        }

        .pager button {
            padding: 0.5rem 1rem;
            background: #1e293b;
            border: 1px solid #334155;
            border-radius: 0.5rem;
            color: #e2e8f0;
            cursor: pointer;
        }

        .pager button:disabled {
            opacity: 0.4;
            cursor: default;
        }

        .error-box {
            padding: 1rem;
            background: rgba(239, 68, 68, 0.1);
            border: 1px solid rgba(239, 68, 68, 0.3);
            border-radius: 0.5rem;
            color: #f87171;
            margin-bottom: 1.5rem;
            display: none;
        }

        .profile-head {
            display: flex;
            align-items: center;
            gap: 1.25rem;
            margin-bottom: 1.5rem;
        }

        .profile-head img {
            width: 72px;
            height: 72px;
            border-radius: 50%;
            border: 2px solid #334155;
        }

        .profile-handle {
            font-size: 1.75rem;
            font-weight: 700;
        }

        .profile-rank {
            font-size: 0.95rem;
            font-weight: 600;
        }

        .profile-meta {
            color: #94a3b8;
            font-size: 0.875rem;
        }

        .countdown {
            color: #fbbf24;
            font-weight: 600;
        }

        .delta-pos { color: #34d399; }
        .delta-neg { color: #f87171; }

        .compare-grid {
            display: grid;
            grid-template-columns: 1fr auto 1fr;
            gap: 0.75rem;
            align-items: center;
        }

        .compare-cell {
            padding: 0.75rem 1rem;
            background: #0f172a;
            border: 1px solid #334155;
            border-radius: 0.5rem;
            text-align: center;
            font-size: 1.1rem;
            font-weight: 600;
        }

        .compare-cell.winner {
            border-color: #34d399;
            color: #34d399;
        }

        .compare-metric {
            text-align: center;
            font-size: 0.8rem;
            color: #94a3b8;
            text-transform: uppercase;
            letter-spacing: 0.05em;
        }

        .verdict {
            text-align: center;
            font-size: 1.2rem;
            font-weight: 700;
            margin-top: 1.5rem;
        }

        canvas {
            max-height: 380px;
        }

        .muted {
            color: #64748b;
            text-align: center;
            padding: 2rem;
        }

        footer {
            text-align: center;
            margin-top: 3rem;
            color: #475569;
            font-size: 0.8rem;
        }
    </style>
</head>
<body>
    <div class="container">
        <header>
            <h1>Codeforces Explorer</h1>
            <p class="subtitle">Profiles, contests, problems and head-to-head comparisons</p>
        </header>

        <div class="status-bar">
            <div class="live-dot"></div>
            <span>Live contest countdowns</span>
        </div>

        <div class="tabs">
            <button class="tab-btn active" data-panel="profile">Profile</button>
            <button class="tab-btn" data-panel="contests">Contests</button>
            <button class="tab-btn" data-panel="problems">Problems</button>
            <button class="tab-btn" data-panel="compare">Compare</button>
        </div>

        <div class="error-box" id="error-box"></div>

        <div class="panel active" id="panel-profile">
            <div class="search-row">
                <input id="handle-input" placeholder="Codeforces handle" />
                <button class="action" onclick="loadProfile()">Search</button>
            </div>
            <div id="profile-content" class="muted">Search for a handle to see their profile and rating chart</div>
        </div>

        <div class="panel" id="panel-contests">
            <div class="card">
                <h2>Upcoming Contests</h2>
                <table>
                    <thead><tr><th>Name</th><th>Starts</th><th>Starts In</th><th>Length</th></tr></thead>
                    <tbody id="upcoming-body"></tbody>
                </table>
            </div>
            <div class="card">
                <h2>Recent Contests</h2>
                <table>
                    <thead><tr><th>Name</th><th>Started</th><th>Length</th></tr></thead>
                    <tbody id="past-body"></tbody>
                </table>
            </div>
        </div>

        <div class="panel" id="panel-problems">
            <div class="search-row">
                <input id="problem-search" placeholder="Search by name" />
                <select id="problem-tag"><option value="">All tags</option></select>
                <input id="problem-rating" placeholder="Rating (e.g. 1500)" />
                <button class="action" onclick="resetAndLoadProblems()">Filter</button>
            </div>
            <div class="card">
                <table>
                    <thead><tr><th>Problem</th><th>Rating</th><th>Solved</th><th>Tags</th></tr></thead>
                    <tbody id="problems-body"></tbody>
                </table>
                <div class="pager">
                    <button id="prev-btn" onclick="changePage(-1)">Prev</button>
                    <span id="page-label">Page 1 of 1</span>
                    <button id="next-btn" onclick="changePage(1)">Next</button>
                </div>
            </div>
        </div>

        <div class="panel" id="panel-compare">
            <div class="search-row">
                <input id="compare-a" placeholder="First handle" />
                <input id="compare-b" placeholder="Second handle" />
                <button class="action" onclick="loadCompare()">Compare</button>
            </div>
            <div id="compare-content" class="muted">Enter two handles to compare them</div>
        </div>

        <footer>Data from the public Codeforces API</footer>
    </div>

    <script>
        let currentPage = 1;
        let pageCount = 1;
        let ratingChart = null;

        function showError(msg) {
            const box = document.getElementById('error-box');
            box.textContent = msg;
            box.style.display = 'block';
        }

        function clearError() {
            document.getElementById('error-box').style.display = 'none';
        }

        async function fetchJSON(url) {
            const res = await fetch(url);
            if (!res.ok) {
                throw new Error(await res.text());
            }
            return res.json();
        }

        document.querySelectorAll('.tab-btn').forEach(btn => {
            btn.addEventListener('click', () => {
                document.querySelectorAll('.tab-btn').forEach(b => b.classList.remove('active'));
                document.querySelectorAll('.panel').forEach(p => p.classList.remove('active'));
                btn.classList.add('active');
                document.getElementById('panel-' + btn.dataset.panel).classList.add('active');
                clearError();
                if (btn.dataset.panel === 'contests') loadContests();
                if (btn.dataset.panel === 'problems') loadProblems();
            });
        });

        document.getElementById('handle-input').addEventListener('keydown', e => {
            if (e.key === 'Enter') loadProfile();
        });

        async function loadProfile() {
            const handle = document.getElementById('handle-input').value.trim();
            if (!handle) return;
            clearError();
            try {
                const [profile, rating] = await Promise.all([
                    fetchJSON('/api/user/' + encodeURIComponent(handle)),
                    fetchJSON('/api/rating/' + encodeURIComponent(handle)),
                ]);
                renderProfile(profile, rating);
            } catch (err) {
                showError(err.message);
            }
        }

        function renderProfile(profile, rating) {
            const u = profile.user;
            const band = profile.band;
            const name = [u.firstName, u.lastName].filter(Boolean).join(' ');
            const place = [u.city, u.country].filter(Boolean).join(', ');

            let html = '<div class="card">' +
                '<div class="profile-head">' +
                (u.titlePhoto ? '<img src="' + u.titlePhoto + '" alt="" />' : '') +
                '<div>' +
                '<div class="profile-handle" style="color:' + band.color + '">' + u.handle + '</div>' +
                '<div class="profile-rank" style="color:' + band.color + '">' + band.label + '</div>' +
                (name ? '<div class="profile-meta">' + name + '</div>' : '') +
                (place ? '<div class="profile-meta">' + place + '</div>' : '') +
                (u.organization ? '<div class="profile-meta">' + u.organization + '</div>' : '') +
                '</div></div>' +
                '<div class="stats-grid">' +
                statCard(u.rating || 0, 'Rating') +
                statCard(u.maxRating || 0, 'Max Rating') +
                statCard(profile.solved, 'Problems Solved') +
                statCard(u.contribution, 'Contribution') +
                '</div></div>';

            if (rating.rated) {
                const s = rating.summary;
                html += '<div class="stats-grid">' +
                    statCard(s.maxRating, 'Peak') +
                    statCard(s.minRating, 'Lowest') +
                    statCard((s.totalChange >= 0 ? '+' : '') + s.totalChange, 'Total Change') +
                    statCard(s.contests, 'Rated Contests') +
                    '</div>' +
                    '<div class="card"><h2>Rating History</h2><canvas id="rating-chart"></canvas></div>';
            } else {
                html += '<div class="card"><p class="muted">No rated contests yet</p></div>';
            }

            document.getElementById('profile-content').innerHTML = html;
            document.getElementById('profile-content').classList.remove('muted');

            if (rating.rated) {
                drawRatingChart(rating.points, band.color);
            }
        }

        function statCard(value, label) {
            return '<div class="stat-card"><div class="stat-value">' + value +
                '</div><div class="stat-label">' + label + '</div></div>';
        }

        function drawRatingChart(points, color) {
            if (ratingChart) ratingChart.destroy();
            const ctx = document.getElementById('rating-chart').getContext('2d');
            ratingChart = new Chart(ctx, {
                type: 'line',
                data: {
                    labels: points.map(p => p.date),
                    datasets: [{
                        label: 'Rating',
                        data: points.map(p => p.newRating),
                        borderColor: color,
                        backgroundColor: 'rgba(96, 165, 250, 0.1)',
                        tension: 0.1,
                        fill: true
                    }]
                },
                options: {
                    responsive: true,
                    maintainAspectRatio: true,
                    plugins: {
                        legend: { display: false },
                        tooltip: {
                            callbacks: {
                                afterLabel: ctx => {
                                    const p = points[ctx.dataIndex];
                                    const delta = (p.delta >= 0 ? '+' : '') + p.delta;
                                    return p.contestName + ' (rank ' + p.rank + ', ' + delta + ')';
                                }
                            }
                        }
                    },
                    scales: {
                        y: {
                            beginAtZero: false,
                            grid: { color: '#334155' },
                            ticks: { color: '#94a3b8' }
                        },
                        x: {
                            grid: { color: '#334155' },
                            ticks: { color: '#94a3b8', maxTicksLimit: 10 }
                        }
                    }
                }
            });
        }

        async function loadContests() {
            clearError();
            try {
                const data = await fetchJSON('/api/contests');
                renderContestRows(data.upcoming, data.past);
            } catch (err) {
                showError(err.message);
            }
        }

        function escapeHTML(s) {
            const div = document.createElement('div');
            div.textContent = s;
            return div.innerHTML;
        }

        function renderContestRows(upcoming, past) {
            document.getElementById('upcoming-body').innerHTML = upcoming.map(c =>
                '<tr><td>' + escapeHTML(c.name) + '</td><td>' + c.startDate +
                '</td><td class="countdown" data-contest="' + c.id + '">' + c.startsIn +
                '</td><td>' + c.length + '</td></tr>'
            ).join('') || '<tr><td colspan="4" class="muted">No upcoming contests</td></tr>';

            document.getElementById('past-body').innerHTML = past.map(c =>
                '<tr><td>' + escapeHTML(c.name) + '</td><td>' + c.startDate +
                '</td><td>' + c.length + '</td></tr>'
            ).join('');
        }

        function resetAndLoadProblems() {
            currentPage = 1;
            loadProblems();
        }

        function changePage(delta) {
            const next = currentPage + delta;
            if (next < 1 || next > pageCount) return;
            currentPage = next;
            loadProblems();
        }

        async function loadProblems() {
            clearError();
            const params = new URLSearchParams();
            const search = document.getElementById('problem-search').value.trim();
            const tag = document.getElementById('problem-tag').value;
            const rating = document.getElementById('problem-rating').value.trim();
            if (search) params.set('search', search);
            if (tag) params.set('tag', tag);
            if (rating) params.set('rating', rating);
            params.set('page', currentPage);

            try {
                const data = await fetchJSON('/api/problems?' + params);
                renderProblems(data);
            } catch (err) {
                showError(err.message);
            }
        }

        function renderProblems(data) {
            currentPage = data.number;
            pageCount = data.count;

            const tagSelect = document.getElementById('problem-tag');
            if (tagSelect.options.length <= 1) {
                data.tags.forEach(t => {
                    const opt = document.createElement('option');
                    opt.value = t;
                    opt.textContent = t;
                    tagSelect.appendChild(opt);
                });
            }

            document.getElementById('problems-body').innerHTML = data.problems.map(p =>
                '<tr><td><a href="https://codeforces.com/problemset/problem/' + p.contestId + '/' + p.index +
                '" target="_blank" style="color:#60a5fa;text-decoration:none">' +
                p.contestId + p.index + '. ' + escapeHTML(p.name) + '</a></td>' +
                '<td>' + (p.rating || '—') + '</td>' +
                '<td>' + (p.solvedCount ? p.solvedCount.toLocaleString() : '—') + '</td>' +
                '<td>' + (p.tags || []).map(t => '<span class="tag">' + t + '</span>').join('') + '</td></tr>'
            ).join('') || '<tr><td colspan="4" class="muted">No problems match</td></tr>';

            document.getElementById('page-label').textContent =
                'Page ' + data.number + ' of ' + Math.max(data.count, 1) + ' (' + data.total + ' problems)';
            document.getElementById('prev-btn').disabled = data.number <= 1;
            document.getElementById('next-btn').disabled = data.number >= data.count;
        }

        async function loadCompare() {
            const a = document.getElementById('compare-a').value.trim();
            const b = document.getElementById('compare-b').value.trim();
            if (!a || !b) return;
            clearError();
            try {
                const data = await fetchJSON('/api/compare?a=' + encodeURIComponent(a) + '&b=' + encodeURIComponent(b));
                renderCompare(data);
            } catch (err) {
                showError(err.message);
            }
        }

        function renderCompare(data) {
            const rows = [
                ['Rating', data.first.rating || 0, data.second.rating || 0, data.outcome.rating],
                ['Max Rating', data.first.maxRating || 0, data.second.maxRating || 0, data.outcome.maxRating],
                ['Solved', data.first.solved, data.second.solved, data.outcome.solved],
                ['Contribution', data.first.contribution, data.second.contribution, data.outcome.contribution],
            ];

            let html = '<div class="card"><div class="compare-grid">' +
                '<div class="compare-cell">' + data.first.handle + '</div>' +
                '<div class="compare-metric">vs</div>' +
                '<div class="compare-cell">' + data.second.handle + '</div>';

            rows.forEach(([label, a, b, outcome]) => {
                html += '<div class="compare-cell' + (outcome === 'first' ? ' winner' : '') + '">' + a + '</div>' +
                    '<div class="compare-metric">' + label + '</div>' +
                    '<div class="compare-cell' + (outcome === 'second' ? ' winner' : '') + '">' + b + '</div>';
            });

            let verdict;
            if (data.outcome.overall === 'first') {
                verdict = data.first.handle + ' leads on rating';
            } else if (data.outcome.overall === 'second') {
                verdict = data.second.handle + ' leads on rating';
            } else {
                verdict = 'Dead even on rating';
            }
            html += '</div><div class="verdict">' + verdict + '</div></div>';

            document.getElementById('compare-content').innerHTML = html;
            document.getElementById('compare-content').classList.remove('muted');
        }

        const evtSource = new EventSource('/events/updates');
        evtSource.onmessage = function(event) {
            const update = JSON.parse(event.data);
            if (update.type !== 'countdown') return;
            update.contests.forEach(c => {
                const cell = document.querySelector('[data-contest="' + c.id + '"]');
                if (cell) cell.textContent = c.startsIn;
            });
        };
    </script>
</body>
</html>
`
