package controller

// chatPageHTML is the minimal host page for trying the assistant from a
// browser. The storefront embeds its own widget; this page only exists
// for manual testing and demos.
const chatPageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Crafty Assistant</title>
<style>
  body { font-family: sans-serif; max-width: 640px; margin: 2rem auto; }
  #log { border: 1px solid #ccc; height: 360px; overflow-y: auto; padding: 8px; white-space: pre-wrap; }
  .user { color: #1a5276; margin: 4px 0; }
  .bot { color: #145a32; margin: 4px 0; }
  form { display: flex; gap: 8px; margin-top: 8px; }
  input { flex: 1; padding: 6px; }
</style>
</head>
<body>
<h1>Crafty Assistant</h1>
<div id="log"></div>
<form id="chat-form">
  <input id="message" autocomplete="off" placeholder="Ask about products, artists, orders...">
  <button type="submit">Send</button>
</form>
<script>
  let sessionId = null;
  const log = document.getElementById('log');

  function addLine(cls, text) {
    const div = document.createElement('div');
    div.className = cls;
    div.textContent = (cls === 'user' ? 'You: ' : 'Bot: ') + text;
    log.appendChild(div);
    log.scrollTop = log.scrollHeight;
  }

  document.getElementById('chat-form').addEventListener('submit', async (e) => {
    e.preventDefault();
    const input = document.getElementById('message');
    const message = input.value.trim();
    if (!message) return;
    input.value = '';
    addLine('user', message);

    const res = await fetch('/chat', {
      method: 'POST',
      headers: {'Content-Type': 'application/json'},
      body: JSON.stringify({message: message, session_id: sessionId}),
    });
    const data = await res.json();
    if (res.ok) {
      sessionId = data.session_id;
      addLine('bot', data.response);
    } else {
      addLine('bot', data.message || 'Something went wrong.');
    }
  });
</script>
</body>
</html>
`
