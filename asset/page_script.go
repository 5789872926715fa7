package asset

// PageScript is the browser runtime. It reads window.HAA_RUNTIME, written by
// the generator, and replays the same stagger and effect steps as the Go
// sequencer. Every delayed callback checks its reel generation before running
const PageScript = `
(function () {
    'use strict';

    var R = window.HAA_RUNTIME;
    var T = R.timing;
    var P = R.particles;
    var strips = document.querySelectorAll('.strip');
    var gens = [];

    function sleep(ms) {
        return new Promise(function (resolve) { setTimeout(resolve, ms); });
    }

    function later(reel, gen, ms, fn) {
        setTimeout(function () {
            if (gens[reel] === gen) fn();
        }, ms);
    }

    function between(lo, hi) {
        return lo + Math.floor(Math.random() * (hi - lo + 1));
    }

    function spawn(box, b) {
        var water = b.kind === 'water';
        var shape = water ? P.water : P.crumb;
        var spread = b.spread || P.default_spread;
        var n = between(shape.count_min, shape.count_max);

        for (var k = 0; k < n; k++) {
            var wrapper = document.createElement('div');
            wrapper.className = 'particle-wrapper p-' + b.kind;
            var inner = document.createElement('div');
            inner.className = 'particle-inner';
            wrapper.appendChild(inner);

            var y, tx, ty;
            if (water) {
                y = shape.band_min + Math.random() * shape.band_span;
                tx = (Math.random() - 0.5) * shape.angle * spread * shape.spread_scale;
                ty = -(shape.rise_min + Math.random() * shape.rise_span);
                var size = shape.size_min + Math.random() * shape.size_span;
                wrapper.style.width = size + 'px';
                wrapper.style.height = size + 'px';
            } else {
                y = b.y + (Math.random() - 0.5) * P.jitter_y;
                tx = (Math.random() - 0.5) * spread * 2;
                ty = (shape.fall_min + Math.random() * shape.fall_span) * (b.dir < 0 ? -1 : 1);
            }

            wrapper.style.top = y + '%';
            wrapper.style.left = (b.x + (Math.random() - 0.5) * P.jitter_x) + '%';
            wrapper.style.setProperty('--tx', tx + 'px');
            wrapper.style.setProperty('--ty', ty + 'px');
            box.appendChild(wrapper);
            expire(wrapper);
        }
    }

    function expire(el) {
        setTimeout(function () { el.remove(); }, P.life);
    }

    function match(name) {
        for (var r = 0; r < R.rules.length; r++) {
            if (name.indexOf(R.rules[r].match) !== -1) return R.rules[r];
        }
        return null;
    }

    function apply(box, step) {
        switch (step.action) {
        case 'add':
            box.classList.add(step['class']);
            break;
        case 'remove':
            box.classList.remove(step['class']);
            break;
        case 'mark':
            var mark = document.createElement('div');
            mark.className = 'bite-mark bite-anim ' + step['class'];
            box.appendChild(mark);
            break;
        case 'emit':
            spawn(box, step.burst);
            break;
        }
    }

    function start(i) {
        gens[i] = (gens[i] || 0) + 1;
        var strip = strips[i];
        strip.parentElement.classList.remove('pop-out');
        strip.querySelectorAll('.icon-box').forEach(function (el) {
            R.classes.forEach(function (c) { el.classList.remove(c); });
            el.querySelectorAll('.bite-mark, .particle-wrapper').forEach(function (n) { n.remove(); });
            el.style.opacity = '';
        });
        strip.style.transition = 'none';
        strip.style.transform = 'translateY(0)';
        strip.classList.add('blur-spin');
    }

    function stop(i, iconHeight) {
        var strip = strips[i];
        var count = R.reel_counts[i];
        var target = Math.floor(Math.random() * count);
        var index = target + count * R.stop_repetition;
        var box = strip.children[index];
        var name = box.getAttribute('data-name');

        strip.classList.remove('blur-spin');
        strip.style.transition = 'transform ' + T.stop_transition + 'ms ' + T.stop_easing;
        strip.style.transform = 'translateY(' + (-index * iconHeight) + 'px)';

        var rule = match(name);
        if (!rule) return;

        if (rule.overlay) {
            box.classList.add('active-overlay');
            strip.parentElement.classList.add('pop-out');
        }

        var gen = gens[i];
        var remaining = (strips.length - i) * T.stop_delay + T.wait;
        rule.steps.forEach(function (step) {
            var at = step.anchor === 'cycle_end' ? remaining + step.at : step.at;
            if (at <= 0) {
                apply(box, step);
                return;
            }
            later(i, gen, at, function () { apply(box, step); });
        });
    }

    async function loop() {
        var iconHeight = document.querySelector('.icon-box').offsetHeight;
        for (;;) {
            for (var i = 0; i < strips.length; i++) {
                start(i);
                await sleep(T.start_delay);
            }
            await sleep(T.spin_base);
            for (var j = 0; j < strips.length; j++) {
                stop(j, iconHeight);
                await sleep(T.stop_delay);
            }
            await sleep(T.wait);
        }
    }

    window.addEventListener('load', loop);
})();
`
