package asset

// PageStyle is the logo stylesheet. Every tunable value comes from the :root
// variables the generator writes ahead of it
const PageStyle = `
body {
    display: flex;
    justify-content: center;
    align-items: center;
    height: 100vh;
    margin: 0;
    background-color: var(--bg-color);
    font-family: sans-serif;
    overflow: hidden;
}

/* === Logo === */
.haa-logo {
    display: flex;
    gap: var(--gap);
    position: relative;
}

/* Top and bottom fade masks */
.haa-logo::before, .haa-logo::after {
    content: "";
    position: absolute;
    left: 0; right: 0;
    height: 25%;
    z-index: 10;
    pointer-events: none;
}
.haa-logo::before { top: 0; background: linear-gradient(to bottom, var(--bg-color) 0%, transparent 100%); }
.haa-logo::after { bottom: 0; background: linear-gradient(to top, var(--bg-color) 0%, transparent 100%); }

.reel {
    width: var(--size);
    height: var(--size);
    overflow: hidden;
    position: relative;
    z-index: 1;
}

.reel.pop-out {
    overflow: visible !important;
    z-index: 20;
}
.reel.pop-out .strip .icon-box { opacity: 0; transition: opacity 0s; }
.reel.pop-out .strip .icon-box.active-overlay { opacity: 1; }

.strip {
    display: flex;
    flex-direction: column;
    will-change: transform;
}

.icon-box {
    width: var(--size);
    height: var(--size);
    display: flex;
    justify-content: center;
    align-items: center;
    flex-shrink: 0;
    position: relative;
}

svg {
    width: var(--icon-scale);
    height: var(--icon-scale);
    fill: var(--icon-color);
    transition: fill 0.3s ease;
    transform-origin: center center;
    overflow: visible !important;
}
.icon-box[data-name*="apple"] svg { fill: var(--apple-color); }

/* === Spin === */
.blur-spin {
    filter: blur(2px);
    animation: infinite-spin var(--spin-loop) linear infinite;
}
@keyframes infinite-spin {
    0% { transform: translateY(0); }
    100% { transform: translateY(var(--spin-shift)); }
}

/* === Particles === */
.particle-wrapper {
    position: absolute;
    z-index: 100;
    opacity: 0;
    pointer-events: none;
    transform: translateZ(1px);
    animation: fly-x var(--particle-life) linear forwards;
}
.particle-inner {
    width: 100%;
    height: 100%;
    animation: fly-y var(--particle-life) cubic-bezier(0.25, 1, 0.5, 1) forwards;
}
.p-crumb .particle-inner {
    width: 0; height: 0;
    border-left: calc(var(--crumb-size) / 2) solid transparent;
    border-right: calc(var(--crumb-size) / 2) solid transparent;
    border-bottom: var(--crumb-size) solid var(--icon-color);
}
.p-water .particle-inner {
    background-color: var(--water-color);
    border-radius: 50%;
}
@keyframes fly-x {
    0% { transform: translateX(0); opacity: 1; }
    100% { transform: translateX(var(--tx)); opacity: 0; }
}
@keyframes fly-y {
    0% { transform: translateY(0) scale(1); }
    100% { transform: translateY(var(--ty)) scale(var(--particle-end-scale)); }
}

/* === Anchor === */
.anchor-hover-high svg { transform: translateY(var(--anchor-hover-y)) !important; }
.anchor-drop svg { animation: high-drop var(--drop-duration) cubic-bezier(0.5, 0, 0.75, 0) forwards; }
@keyframes high-drop {
    0% { transform: translateY(var(--anchor-hover-y)); opacity: 1; }
    100% { transform: translateY(0); opacity: 1; }
}

/* === Hammer === */
.hammer-action svg { transform-origin: 80% 80%; animation: hammer-smash var(--smash-duration) cubic-bezier(0.25, 1, 0.5, 1) forwards; }
@keyframes hammer-smash {
    0% { transform: rotate(0deg); }
    40% { transform: rotate(60deg); }
    100% { transform: rotate(0deg); }
}

/* === Heart === */
.heartbeat svg {
    fill: var(--heart-color) !important;
    animation: heart-pulse var(--pulse-period) infinite ease-in-out;
}
@keyframes heart-pulse {
    0% { transform: scale(1); }
    15% { transform: scale(1.25); }
    30% { transform: scale(1); }
    45% { transform: scale(1.15); }
    60% { transform: scale(1); }
    100% { transform: scale(1); }
}

/* === Apple === */
.bite-mark { position: absolute; background-color: var(--bg-color); border-radius: 50%; width: 32%; height: 32%; opacity: 0; z-index: 10; }
.bite-1 { top: 25%; right: 1%; }
.bite-2 { top: 50%; right: -3%; }
.bite-anim { animation: bite-snap var(--bite-snap) linear forwards; }
@keyframes bite-snap {
    from { opacity: 0; transform: scale(0.8); }
    to { opacity: 1; transform: scale(1); }
}

/* === Alien === */
.eye-cover { transform: scale(0); transform-origin: center; transition: transform var(--reveal-duration) cubic-bezier(0, 0, 0.2, 1); }
.alien-action .eye-cover { transform: scale(1) !important; }

/* === Human === */
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
