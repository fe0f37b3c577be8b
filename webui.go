package main

// webUIHTML is the single-page UI served at "/".
// All figures come from the server; the page only renders and posts actions.
const webUIHTML = `<!DOCTYPE html>
<html lang="ja">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>助成金シミュレーター</title>
<style>
  * { box-sizing: border-box; }
  body { margin: 0; font-family: 'Hiragino Sans', 'Yu Gothic', 'Noto Sans JP', sans-serif; background: #f8fafc; color: #1e293b; }
  header { background: linear-gradient(135deg, #1a56db, #0d9488); color: #fff; padding: 20px 24px; }
  header h1 { margin: 0; font-size: 20px; }
  header p { margin: 4px 0 0; font-size: 12px; opacity: .85; }
  nav { display: flex; gap: 4px; padding: 0 24px; background: #fff; border-bottom: 1px solid #e2e8f0; }
  nav button { border: none; background: none; padding: 14px 18px; font-size: 14px; cursor: pointer; color: #64748b; border-bottom: 3px solid transparent; }
  nav button.active { color: #1a56db; border-bottom-color: #1a56db; font-weight: bold; }
  main { max-width: 960px; margin: 0 auto; padding: 24px; }
  .card { background: #fff; border-radius: 12px; padding: 20px; margin-bottom: 16px; box-shadow: 0 1px 3px rgba(0,0,0,.08); }
  .card h2 { margin: 0 0 14px; font-size: 16px; color: #334155; }
  .grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(220px, 1fr)); gap: 14px; }
  label { display: block; font-size: 12px; color: #64748b; margin-bottom: 4px; }
  input, select { width: 100%; padding: 9px 10px; border: 1px solid #cbd5e1; border-radius: 8px; font-size: 14px; }
  .badge { display: inline-block; padding: 4px 12px; border-radius: 999px; font-weight: bold; font-size: 13px; }
  .badge.sme { background: #d1fae5; color: #059669; }
  .badge.large { background: #dbeafe; color: #2563eb; }
  table { width: 100%; border-collapse: collapse; }
  td { padding: 10px 8px; border-bottom: 1px solid #f1f5f9; font-size: 14px; }
  td.amount { text-align: right; font-weight: bold; white-space: nowrap; }
  td.note { font-size: 12px; color: #64748b; }
  tr.total td { background: #eff6ff; color: #1a56db; font-size: 16px; }
  tr.net-a td { background: #f0fdf4; color: #059669; }
  tr.net-b td { background: #e6fffa; color: #0d9488; }
  .warning { color: #b45309; background: #fffbeb; border-radius: 8px; padding: 10px 12px; font-size: 13px; margin-top: 10px; }
  .muted { color: #94a3b8; font-size: 12px; }
  .check { display: flex; align-items: flex-start; gap: 10px; padding: 10px 4px; border-bottom: 1px solid #f1f5f9; cursor: pointer; }
  .check input { width: auto; margin-top: 3px; }
  .tag { font-size: 11px; padding: 2px 8px; border-radius: 6px; margin-left: auto; white-space: nowrap; }
  .tag.critical { background: #fee2e2; color: #dc2626; }
  .tag.advisory { background: #dbeafe; color: #2563eb; }
  .status { padding: 12px; border-radius: 8px; font-weight: bold; }
  .status.ok { background: #d1fae5; color: #059669; }
  .status.ng { background: #fef3c7; color: #b45309; }
  .progress { height: 8px; background: #e2e8f0; border-radius: 4px; overflow: hidden; margin: 8px 0 4px; }
  .progress div { height: 100%; background: #0d9488; }
  .actions { display: flex; gap: 10px; flex-wrap: wrap; }
  .btn { padding: 10px 18px; border: none; border-radius: 8px; cursor: pointer; font-size: 14px; background: #1a56db; color: #fff; }
  .btn.secondary { background: #e2e8f0; color: #334155; }
  .btn:disabled { opacity: .4; cursor: not-allowed; }
  .hidden { display: none; }
</style>
</head>
<body>
<header>
  <h1>人材開発支援助成金（事業展開等リスキリング支援コース）</h1>
  <p>令和7年度（2025年4月〜2026年3月）対応シミュレーター</p>
</header>
<nav>
  <button data-tab="sim" class="active">シミュレーション</button>
  <button data-tab="check">要件チェック</button>
  <button data-tab="tasks">タスクリスト</button>
</nav>
<main>
  <section id="tab-sim">
    <div class="card">
      <h2>企業情報</h2>
      <div class="grid">
        <div><label for="industry">業種</label><select id="industry" data-field="industry"></select></div>
        <div><label for="capital">資本金（万円）</label><input id="capital" data-field="capital" inputmode="decimal" placeholder="例: 5000"></div>
        <div><label for="employees">常時雇用する労働者数（名）</label><input id="employees" data-field="employees" inputmode="numeric" placeholder="例: 80"></div>
      </div>
      <p style="margin-top:14px;">企業規模判定：<span id="size-badge" class="badge sme">中小企業</span></p>
      <p class="muted" id="size-note"></p>
    </div>
    <div class="card">
      <h2>訓練内容</h2>
      <div class="grid">
        <div><label for="trainees">受講予定者数（名）</label><input id="trainees" data-field="trainees" inputmode="numeric"></div>
        <div><label for="days">訓練日数（日）</label><input id="days" data-field="days" inputmode="numeric"></div>
        <div><label for="hours_per_day">1日あたり訓練時間（時間）</label><input id="hours_per_day" data-field="hours_per_day" inputmode="decimal"></div>
        <div><label for="cost_per_trainee">1人あたり訓練経費（円）</label><input id="cost_per_trainee" data-field="cost_per_trainee" inputmode="numeric"></div>
      </div>
      <p class="muted">総訓練時間：<span id="total-hours">0</span>時間</p>
      <div id="hours-warning" class="warning hidden">⚠️ 訓練時間が10時間未満です。本コースの対象となるには10時間以上の訓練が必要です。</div>
    </div>
    <div class="card" id="results">
      <h2>助成金シミュレーション結果</h2>
      <div id="results-empty" class="muted">受講者数・訓練時間・訓練経費を入力すると結果が表示されます。</div>
      <div id="results-body" class="hidden">
        <table>
          <tr><td>訓練経費合計</td><td class="amount" id="r-total-cost"></td><td class="note" id="r-total-cost-note"></td></tr>
          <tr><td>経費助成</td><td class="amount" id="r-expense"></td><td class="note" id="r-expense-note"></td></tr>
          <tr><td>賃金助成</td><td class="amount" id="r-wage"></td><td class="note" id="r-wage-note"></td></tr>
          <tr class="total"><td><b>助成金合計</b></td><td class="amount" id="r-total"></td><td></td></tr>
          <tr class="net-a"><td><b>実質負担額A</b>（経費助成のみ差引）</td><td class="amount" id="r-net-a"></td><td class="note" id="r-net-a-note"></td></tr>
          <tr class="net-b"><td><b>実質負担額B</b>（賃金助成も含む）</td><td class="amount" id="r-net-b"></td><td class="note" id="r-net-b-note"></td></tr>
        </table>
        <div id="cap-warning" class="warning hidden"></div>
        <p class="muted">※ 実質負担額A：訓練経費から経費助成を差し引いた額（直接的な研修コスト負担）<br>※ 実質負担額B：さらに賃金助成を差し引いた額（賃金助成は訓練中の人件費補填として別途受給）</p>
      </div>
    </div>
    <div class="card actions">
      <button class="btn" id="btn-print" disabled>印刷 / PDF保存</button>
      <button class="btn secondary" id="btn-pdf" disabled>PDFダウンロード</button>
      <button class="btn secondary" id="btn-export" disabled>レポートを保存</button>
      <button class="btn secondary" id="btn-reset">入力をリセット</button>
      <span class="muted" id="export-msg"></span>
    </div>
  </section>

  <section id="tab-check" class="hidden">
    <div class="card">
      <h2>申請要件チェックリスト</h2>
      <div id="criteria"></div>
    </div>
    <div class="card"><div id="check-status" class="status ng"></div></div>
  </section>

  <section id="tab-tasks" class="hidden">
    <div class="card">
      <h2>準備タスクリスト</h2>
      <div class="progress"><div id="task-progress" style="width:0%"></div></div>
      <p class="muted" id="task-count"></p>
    </div>
    <div id="phases"></div>
  </section>
</main>
<script>
(function () {
  var cfg = null;
  var state = null;

  function $(id) { return document.getElementById(id); }

  function api(method, path, body) {
    var opts = { method: method, headers: {} };
    if (body !== undefined) {
      opts.headers['Content-Type'] = 'application/json';
      opts.body = JSON.stringify(body);
    }
    return fetch(path, opts).then(function (r) { return r.json(); });
  }

  function apply(resp) {
    if (!resp.success) { alert(resp.error || 'エラーが発生しました'); return; }
    state = resp;
    render();
  }

  function act(action) { return api('POST', '/api/session/action', action).then(apply); }

  function text(id, v) { $(id).textContent = v; }
  function show(id, visible) { $(id).classList.toggle('hidden', !visible); }

  function renderForm() {
    var form = state.session.form;
    document.querySelectorAll('[data-field]').forEach(function (el) {
      if (document.activeElement !== el) { el.value = form[el.dataset.field]; }
    });
  }

  function renderResults() {
    var ev = state.evaluation, d = ev.display, r = ev.result;
    var sme = ev.size_class === 'sme';
    var badge = $('size-badge');
    badge.textContent = ev.size_label;
    badge.className = 'badge ' + (sme ? 'sme' : 'large');
    var ind = cfg.industries.filter(function (i) { return i.name === ev.company.industry; })[0];
    text('size-note', ind ? '中小企業の基準：資本金' + ind.capital_limit.toLocaleString('ja-JP') + '万円以下 または 労働者数' + ind.employee_limit + '名以下' : '');
    text('total-hours', d.total_hours);
    show('hours-warning', r.total_hours > 0 && r.total_hours < cfg.min_training_hours);

    show('results-empty', !ev.valid);
    show('results-body', ev.valid);
    ['btn-print', 'btn-export'].forEach(function (id) { $(id).disabled = !ev.valid; });
    $('btn-pdf').disabled = !ev.valid || !cfg.pdf_available;
    if (!ev.valid) { return; }

    text('r-total-cost', d.total_cost);
    text('r-total-cost-note', d.cost_per_trainee + ' × ' + r.trainee_count + '名');
    text('r-expense', d.total_expense_subsidy);
    text('r-expense-note', '助成率' + d.expense_rate + '%（上限: ' + d.expense_limit + '/人）');
    text('r-wage', d.total_wage_subsidy);
    text('r-wage-note', d.wage_per_hour + '/時間 × ' + d.total_hours + 'h × ' + r.trainee_count + '名');
    text('r-total', d.total_subsidy);
    text('r-net-a', d.net_cost_a);
    text('r-net-a-note', '1人あたり：' + d.net_cost_a_per_trainee);
    text('r-net-b', d.net_cost_b);
    text('r-net-b-note', '1人あたり：' + d.net_cost_b_per_trainee);
    show('cap-warning', ev.cap_reached);
    text('cap-warning', '⚠️ 1人あたり経費助成限度額（' + d.expense_limit + '）に達しているため、助成率どおりの満額にはなりません。');
  }

  function renderCriteria() {
    var box = $('criteria');
    box.innerHTML = '';
    cfg.criteria.forEach(function (c) {
      var row = document.createElement('label');
      row.className = 'check';
      var cb = document.createElement('input');
      cb.type = 'checkbox';
      cb.checked = !!state.session.checks[c.id];
      cb.addEventListener('change', function () { act({ type: 'toggle_check', id: c.id }); });
      var span = document.createElement('span');
      span.textContent = c.text;
      var tag = document.createElement('span');
      tag.className = 'tag ' + (c.critical ? 'critical' : 'advisory');
      tag.textContent = c.critical ? '必須' : '推奨';
      row.appendChild(cb); row.appendChild(span); row.appendChild(tag);
      box.appendChild(row);
    });
    var st = $('check-status');
    if (state.all_critical_satisfied) {
      st.className = 'status ok';
      st.textContent = '✅ 必須要件をすべて満たしています。計画届の準備を進めましょう。';
    } else {
      st.className = 'status ng';
      st.textContent = '⚠️ 未確認の必須要件が' + state.unchecked_critical + '件あります。';
    }
  }

  function renderTasks() {
    var box = $('phases');
    box.innerHTML = '';
    cfg.phases.forEach(function (p) {
      var card = document.createElement('div');
      card.className = 'card';
      var h = document.createElement('h2');
      h.textContent = p.title;
      card.appendChild(h);
      p.tasks.forEach(function (t) {
        var row = document.createElement('label');
        row.className = 'check';
        var cb = document.createElement('input');
        cb.type = 'checkbox';
        cb.checked = !!state.session.task_checks[t.key];
        cb.addEventListener('change', function () { act({ type: 'toggle_task', id: t.key }); });
        var span = document.createElement('span');
        span.textContent = t.text;
        row.appendChild(cb); row.appendChild(span);
        card.appendChild(row);
      });
      box.appendChild(card);
    });
    var pct = state.tasks_total ? Math.round(state.tasks_done / state.tasks_total * 100) : 0;
    $('task-progress').style.width = pct + '%';
    text('task-count', state.tasks_done + ' / ' + state.tasks_total + ' 完了（' + pct + '%）');
  }

  function render() {
    renderForm();
    renderResults();
    renderCriteria();
    renderTasks();
  }

  document.querySelectorAll('nav button').forEach(function (b) {
    b.addEventListener('click', function () {
      document.querySelectorAll('nav button').forEach(function (x) { x.classList.toggle('active', x === b); });
      ['sim', 'check', 'tasks'].forEach(function (t) { show('tab-' + t, t === b.dataset.tab); });
    });
  });

  document.querySelectorAll('[data-field]').forEach(function (el) {
    var ev = el.tagName === 'SELECT' ? 'change' : 'input';
    el.addEventListener(ev, function () {
      act({ type: 'set_field', field: el.dataset.field, value: el.value });
    });
  });

  $('btn-print').addEventListener('click', function () { window.open('/api/report.html', '_blank'); });
  $('btn-pdf').addEventListener('click', function () { window.location.href = '/api/report.pdf'; });
  $('btn-reset').addEventListener('click', function () { api('POST', '/api/session/reset').then(apply); });
  $('btn-export').addEventListener('click', function () {
    var format = cfg.pdf_available ? 'pdf' : 'html';
    api('POST', '/api/export', { format: format }).then(function (r) { text('export-msg', r.message); });
  });

  api('GET', '/api/config').then(function (c) {
    cfg = c;
    var sel = $('industry');
    cfg.industries.forEach(function (i) {
      var o = document.createElement('option');
      o.value = i.name; o.textContent = i.name;
      sel.appendChild(o);
    });
    return api('GET', '/api/session');
  }).then(apply);
})();
</script>
</body>
</html>
`
