package config

import "time"

// Base application details
const AppName = "emacsmode"
const DefaultConfigFileName = "config.toml" // Main config file
const DefaultLogFileName = "emacsmode.log"

// Editor behaviour
const UseEmacsMode = true
const DefaultTabStop = 4
const DefaultShiftWidth = 4
const ExpandTabs = false
const DefaultKillRingSize = 60
const DefaultCommentPrefix = "//"
const SystemClipboard = false

// Minibuffer
const MessageTimeout = 4 * time.Second
