package policy

// Disposition is the advisory triage category attached to a violation for
// automated downstream action. It annotates a violation the scanner already
// produced; it never creates or suppresses one.
type Disposition string

const (
	// Trash is obvious junk, safe to delete without asking.
	Trash Disposition = "trash"
	// Config is likely important; a human should decide.
	Config Disposition = "config"
	// Unknown needs content inspection before acting.
	Unknown Disposition = "unknown"
)

// trashPatterns match files that are definitely junk. The table is checked
// before configPatterns; a name matching both tables is trash.
var trashPatterns = []string{
	// Temp/backup files
	"*.tmp", "*.temp", "*.bak", "*.swp", "*.swo", "*.orig",
	"*.backup", "*~", "*.old",
	// Logs
	"*.log", "*.logs", "npm-debug.log*", "yarn-debug.log*",
	"yarn-error.log*", "lerna-debug.log*", "debug.log",
	// Cache/compiled
	"*.cache", "*.pyc", "*.pyo", "*.pyd", "__pycache__",
	"*.class", "*.o", "*.obj", "*.exe", "*.dll", "*.so",
	// OS junk
	".DS_Store", "Thumbs.db", "desktop.ini", "*.lnk",
	// IDE junk that escaped .gitignore
	"*.sublime-workspace", ".idea", "*.iml",
	// Extensions that are never configuration
	"*.cal", "*.bkp", "*.gho", "*.iso",
	// Build artifacts
	"*.min.js", "*.min.css", "*.map",
	// Test artifacts
	"coverage", ".nyc_output", "junit.xml",
	// Junk variants of otherwise-important JSON
	"*.json.bak", "*.json.tmp", "*.json.old",
}

// configPatterns match recognized manifests, build files, documentation,
// licenses, environment files, and scripts.
var configPatterns = []string{
	"package.json", "tsconfig.json", "jsconfig.json",
	"*.config.js", "*.config.ts", "*.config.mjs",
	"*.yaml", "*.yml", "*.toml",
	"Makefile", "Dockerfile*", "docker-compose*",
	"*.md", "LICENSE*", "CHANGELOG*",
	"*.env", "*.env.*",
	// Scripts
	"*.sh", "*.ps1", "*.bat", "*.cmd",
}

var (
	trashMatcher  = NewMatcher(trashPatterns)
	configMatcher = NewMatcher(configPatterns)
)

// Classify assigns a disposition to a violation name. The match subject is
// the full name as reported, trailing directory marker included, compared
// case-insensitively. The trash table wins over the config table.
func Classify(name string) Disposition {
	if trashMatcher.MatchAny(name) {
		return Trash
	}
	if configMatcher.MatchAny(name) {
		return Config
	}
	return Unknown
}
