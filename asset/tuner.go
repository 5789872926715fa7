package asset

// TunerStyle is shared by the alien and human geometry tuners
const TunerStyle = `
body {
    background-color: #1e1e1e;
    color: #eee;
    font-family: 'Segoe UI', sans-serif;
    display: flex;
    height: 100vh;
    margin: 0;
    overflow: hidden;
}

.preview-area {
    flex: 2;
    display: flex;
    justify-content: center;
    align-items: center;
    background-image:
        linear-gradient(#333 1px, transparent 1px),
        linear-gradient(90deg, #333 1px, transparent 1px);
    background-size: 20px 20px;
    background-position: center center;
    border-right: 1px solid #444;
    position: relative;
}

.guide-x, .guide-y {
    position: absolute;
    background: rgba(243, 139, 168, 0.4);
    pointer-events: none;
}
.guide-x { width: 100%; height: 1px; top: 50%; }
.guide-y { height: 100%; width: 1px; left: 50%; }

.icon-container {
    width: 400px;
    height: 400px;
    display: flex;
    justify-content: center;
    align-items: center;
    position: relative;
}

svg { width: 100%; height: 100%; fill: #000; }

.controls {
    flex: 1;
    padding: 24px;
    background: #181818;
    overflow-y: auto;
    display: flex;
    flex-direction: column;
    gap: 16px;
    min-width: 300px;
    box-shadow: -5px 0 15px rgba(0, 0, 0, 0.5);
}

h2 { margin: 0 0 8px 0; color: #89b4fa; font-size: 18px; }
h3 { margin: 0 0 12px 0; color: #f38ba8; font-size: 14px; border-bottom: 1px solid #333; padding-bottom: 5px; }

.control-group { background: #252525; padding: 16px; border-radius: 10px; }
.input-row { margin-bottom: 12px; }

label {
    display: flex;
    justify-content: space-between;
    font-size: 12px;
    margin-bottom: 6px;
    color: #ccc;
}

input[type=range] { width: 100%; cursor: pointer; accent-color: #f38ba8; }

.val { color: #f38ba8; font-weight: bold; }
.hint { font-size: 11px; color: #777; margin-top: 2px; }

.code-output {
    background: #111;
    color: #a6e3a1;
    font-family: 'Consolas', monospace;
    padding: 12px;
    border-radius: 8px;
    font-size: 12px;
    white-space: pre;
    user-select: text;
    border: 1px solid #333;
}

.copy-btn {
    background: #89b4fa;
    border: none;
    color: #000;
    padding: 10px;
    cursor: pointer;
    font-weight: bold;
    margin-top: 10px;
    border-radius: 8px;
    width: 100%;
}
.copy-btn:hover { opacity: 0.9; }

/* alien */
.test-eye { fill: #fff; transform-box: fill-box; transform-origin: center; opacity: 0.85; }

/* human */
.human svg > :not(.v-shape) { filter: invert(1); opacity: 0.4; }
.human .icon-container { background: #000; border: 1px dashed #666; }
.v-shape { fill: none !important; stroke-width: 2; vector-effect: non-scaling-stroke; opacity: 1 !important; }
#v-circle { stroke: #00ffcc; }
#v-rect { stroke: #ff00ff; }
`

// TunerScript binds every range input to its svg attribute and renders the
// geometry block as YAML for the config file. window.HAA_TUNER lists the
// fields: id, target element, attribute and an optional mirror rule
const TunerScript = `
(function () {
    'use strict';

    var cfg = window.HAA_TUNER;
    var output = document.getElementById('result-code');

    function value(id) {
        return parseFloat(document.getElementById('inp-' + id).value);
    }

    function update() {
        var vals = {};
        cfg.fields.forEach(function (f) {
            var v = value(f.id);
            vals[f.id] = v;
            document.getElementById('val-' + f.id).innerText = v + '%';
            f.targets.forEach(function (t) {
                var x = t.mirror ? 100 - v : v;
                document.getElementById(t.el).setAttribute(t.attr, x + '%');
                if (t.mirror) {
                    var hint = document.getElementById('mirror-' + f.id);
                    if (hint) hint.innerText = x + '%';
                }
            });
        });

        var scale = document.getElementById('anim-scale');
        if (scale) {
            cfg.scaled.forEach(function (id) {
                document.getElementById(id).style.transform = 'scale(' + scale.value + ')';
            });
        }

        var lines = ['geometry:', '  ' + cfg.section + ':'];
        cfg.fields.forEach(function (f) {
            lines.push('    ' + f.key + ': ' + vals[f.id]);
        });
        output.innerText = lines.join('\n');
    }

    document.querySelectorAll('input[type=range]').forEach(function (el) {
        el.addEventListener('input', update);
    });

    var btn = document.querySelector('.copy-btn');
    btn.addEventListener('click', function () {
        navigator.clipboard.writeText(output.innerText).then(function () {
            var label = btn.innerText;
            btn.innerText = 'Copied';
            btn.style.background = '#a6e3a1';
            setTimeout(function () {
                btn.innerText = label;
                btn.style.background = '#89b4fa';
            }, 1500);
        });
    });

    update();
})();
`

// MotionStyle is the human stroke debug page
const MotionStyle = `
body {
    display: flex;
    justify-content: center;
    align-items: center;
    height: 100vh;
    margin: 0;
    background-color: var(--bg-color);
    font-family: monospace;
}

.debug-container {
    position: relative;
    width: 300px;
    height: 300px;
    border: 1px dashed #ccc;
}

.guide-x { position: absolute; top: 50%; left: 0; right: 0; height: 1px; background: rgba(255, 0, 0, 0.3); z-index: 0; }
.guide-y { position: absolute; left: 50%; top: 0; bottom: 0; width: 1px; background: rgba(255, 0, 0, 0.3); z-index: 0; }

.icon-box {
    width: 100%;
    height: 100%;
    display: flex;
    justify-content: center;
    align-items: center;
    position: relative;
    z-index: 1;
}

svg {
    width: var(--icon-scale);
    height: var(--icon-scale);
    fill: var(--icon-color);
    overflow: visible !important;
}

.v-shape {
    fill: none;
    stroke: var(--icon-color);
    stroke-width: 2px;
    stroke-dasharray: 400;
    stroke-dashoffset: 400;
    opacity: 1;
    vector-effect: non-scaling-stroke;
    stroke-linecap: round;
}
.v-circle { transform-origin: center; transform: rotate(-135deg); }
.draw-circle .v-circle { animation: draw-stroke var(--stroke-duration) linear forwards; }
.draw-square .v-rect { animation: draw-stroke var(--stroke-duration) linear forwards; }
@keyframes draw-stroke { to { stroke-dashoffset: 0; } }
`

// MotionScript replays the trace effect on a loop
const MotionScript = `
(function () {
    'use strict';

    var M = window.HAA_MOTION;
    var el = document.getElementById('target');

    function play() {
        el.classList.remove('draw-circle', 'draw-square');
        void el.offsetWidth;
        el.classList.add('draw-square');
        setTimeout(function () { el.classList.add('draw-circle'); }, M.trace_interval);
    }

    setTimeout(play, M.first_play);
    setInterval(play, M.replay);
})();
`
