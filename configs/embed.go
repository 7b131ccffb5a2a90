package configs

import _ "embed"

// Application holds the bundled application.yml used when PROPERTIES_FILE_PATH is not set.
//
//go:embed application.yml
var Application []byte

// Messages holds the bundled messages.yml used when MESSAGES_FILE_PATH is not set.
//
//go:embed messages.yml
var Messages []byte
