package config

// LayerDefault is the single render layer used by the window host.
const LayerDefault = 0
