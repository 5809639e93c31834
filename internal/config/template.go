package config

const configTemplate = `# chatkeys configuration file
# Chat commands starting with the prefix are turned into key presses in the target game.

# Command prefix (a single character)
prefix: ";"

# Discord bot token (prefer the CHATKEYS_TOKEN environment variable or a .env file)
# token: ""

# Target game: ftl or nds
game: ftl

# Input backend: robotgo (default) or exec (xdotool on Linux, osascript on macOS)
backend: robotgo

# Scheduler tick and the largest repeat count that will be replayed
tick_interval: 1ms
repeat_ceiling: 20

# Optional overrides
# key_delay: 50ms            # hold time per key
# window_title: "FTL: Faster Than Light"  # case-sensitive substring of the game window title
# keymap_file: keymap.yaml   # per-action key overrides

# Observability settings
log_level: info  # debug, info, warn, error
`
