package asset

// DefaultConfig is the embedded fallback configuration, used when neither a
// custom path nor ./haa-logo.yaml is present. Keep in sync with config.Default
const DefaultConfig = `
# === haa-logo configuration ===
# Every key is optional in a custom file; missing keys keep these values.

runtime:
  assets_dir: assets/icons
  output: haa_logo.html
  open: true
  log_level: info
  # cron spec for scheduled rebuilds, e.g. "@every 30s"; empty disables
  watch: ""

visual:
  icon_size: 80
  gap_size: 3
  icon_scale: 0.7
  background: "#f4f4f4"
  icon: "#000000"
  heart: "#D32F2F"
  apple: "#000000"
  water: "#000000"
  anchor_hover_y: -6

# --- SEQUENCER ---
timing:
  start_delay: 150ms
  spin_base: 1s
  stop_delay: 400ms
  wait: 3500ms
  stop_transition: 600ms
  stop_easing: "cubic-bezier(0.15, 1, 0.3, 1)"
  spin_loop: 400ms

  # --- EFFECTS (relative to the reel stop) ---
  effect_delay: 600ms
  drop_duration: 200ms
  smash_duration: 400ms
  smash_impact: 150ms
  second_bite: 250ms
  bite_snap: 50ms
  reveal_lead: 100ms
  reveal_duration: 100ms
  stroke_duration: 1600ms
  trace_interval: 1600ms
  pulse_period: 1200ms

particles:
  life: 400ms
  end_scale: 0.5
  default_spread: 15
  jitter_x: 10
  jitter_y: 5
  water:
    count_min: 20
    count_max: 30
    band_min: 60
    band_span: 30
    angle: 2.5
    spread_scale: 1.3
    rise_min: 11
    rise_span: 4
    size_min: 2
    size_span: 5
  crumb:
    count_min: 3
    count_max: 6
    fall_min: 10
    fall_span: 20
    size: 4

# --- OVERLAY SHAPES (percent of the svg viewport) ---
geometry:
  alien_eyes:
    left_x: 29.5
    y: 60.5
    r: 18
  vitruvian:
    circle_x: 50
    circle_y: 50.5
    circle_r: 55
    rect_x: 2
    rect_y: 8
    rect_w: 100.5
    rect_h: 92

# --- REELS (left to right) ---
reels:
  - { name: h, dir: h_reel }
  - { name: a, dir: a_reel }
  - { name: a, dir: a_reel }
`
