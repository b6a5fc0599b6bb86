package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// UserAgent identifies the HTTP client.
var UserAgent = "Go-Age/" + Version

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName           = "Go Age"
	AppID             = "com.github.tartampluch.go-age"
	KeyringService    = "com.github.tartampluch.go-age"
	LocalhostBindAddr = "127.0.0.1"
	LogFileName       = "app.log"
	IconFile          = "Icon.png"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for sensitive files like logs.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	// Used for creating secure cache directories.
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stdout"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Calendar Domain: Gregorian Rules & Range Policy
// -----------------------------------------------------------------------------

const (
	// MinYear is the earliest accepted birth year. Dates before the 20th
	// century fall outside the supported range policy.
	MinYear = 1900

	MinMonth = 1
	MaxMonth = 12

	// MinDay / MaxDayCoarse bound the first-pass day check. The precise
	// bound depends on month and year and is computed per date.
	MinDay       = 1
	MaxDayCoarse = 31

	MonthFebruary = 2
	MonthsPerYear = 12

	// Gregorian leap year divisibility rules.
	LeapDivisor        = 4
	LeapCenturyDivisor = 100
	LeapCycleDivisor   = 400

	DaysFebLeap   = 29
	DaysFebCommon = 28
	DaysShort     = 30
	DaysLong      = 31
)

// -----------------------------------------------------------------------------
// Validation: Field Names & Error Codes
// -----------------------------------------------------------------------------

const (
	FieldDay   = "day"
	FieldMonth = "month"
	FieldYear  = "year"
)

// Stable error codes; the UI maps these to translation keys.
const (
	CodeRequired    = "required"
	CodeNotANumber  = "not_a_number"
	CodeYearTooOld  = "year_too_old"
	CodeYearFuture  = "year_future"
	CodeMonthRange  = "month_range"
	CodeDayTooSmall = "day_too_small"
	CodeDayTooLarge = "day_too_large"
	CodeDayMonthFit = "day_month_fit"
	CodeDayFebLeap  = "day_feb_leap"
	CodeInvalidDate = "invalid_date"
)

// Validation Messages (English defaults; localized at the UI layer).
const (
	MsgFieldRequired = "This field is required"
	MsgNotANumber    = "Must be a number"
	MsgYearTooOld    = "Year must be 1900 or later"
	MsgYearFuture    = "Must be in the past"
	MsgMonthRange    = "Must be a valid month (1-12)"
	MsgDayTooSmall   = "Must be at least 1"
	MsgDayTooLarge   = "Must be 31 or less"
	MsgDayFebLeap    = "February has 29 days this year"
	MsgInvalidDate   = "Must be a valid date"

	// FormatDayMonthFit expects the month length as its single argument.
	FormatDayMonthFit = "Must be between 1 and %d"
)

// -----------------------------------------------------------------------------
// UI Constants & Preferences
// -----------------------------------------------------------------------------

const (
	MainWindowWidth     = 420
	SettingsWindowWidth = 600

	// Input length caps for the numeric date entries.
	MaxDigitsDay   = 2
	MaxDigitsMonth = 2
	MaxDigitsYear  = 4

	// Field placeholders
	PlaceholderDay   = "DD"
	PlaceholderMonth = "MM"
	PlaceholderYear  = "YYYY"

	// Default file name suggested when saving the exported calendar.
	DefaultICSFileName = "birthday" + ExtICS

	// Preference Keys
	PrefDisplayName     = "display_name"
	PrefLanguage        = "language"
	PrefServerPort      = "server_port"
	PrefSourceMode      = "source_mode"
	PrefLocalPath       = "local_path"
	PrefWebURL          = "web_url"
	PrefUsername        = "username"
	PrefReminderEnabled = "reminder_enabled"
	PrefReminderDays    = "reminder_days"
	PrefLastRun         = "last_run_version"
)

// SupportedLanguages defines the list of available UI languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr"}

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWinTitle       = "win_title"
	TKeyWinSettings    = "win_settings_title"
	TKeyMenuShow       = "menu_show"
	TKeyMenuSettings   = "menu_settings"
	TKeyLblName        = "lbl_name"
	TKeyLblBirthDate   = "lbl_birth_date"
	TKeyBtnCalculate   = "btn_calculate"
	TKeyBtnImport      = "btn_import"
	TKeyBtnExport      = "btn_export"
	TKeyBtnSave        = "btn_save"
	TKeyBtnCancel      = "btn_cancel"
	TKeyBtnBrowse      = "btn_browse"
	TKeyResultYears    = "result_years" // Requires Count (pluralized)
	TKeyResultMonths   = "result_months"
	TKeyResultDays     = "result_days"
	TKeyResultWaiting  = "result_waiting"
	TKeyLblLanguage    = "lbl_language"
	TKeyHelpLanguage   = "help_language"
	TKeyLblPort        = "lbl_server_port"
	TKeyHelpPort       = "help_port"
	TKeyLblGeneral     = "lbl_general"
	TKeyLblSource      = "lbl_source"
	TKeyModeLocal      = "mode_local"
	TKeyModeWeb        = "mode_web"
	TKeyLblURL         = "lbl_url"
	TKeyHelpURL        = "help_url"
	TKeyLblUser        = "lbl_user"
	TKeyLblPass        = "lbl_pass"
	TKeyLblEnableRem   = "lbl_enable_reminder"
	TKeyLblRemDays     = "lbl_reminder_days"
	TKeyLblFooter      = "lbl_footer"
	TKeyNotifImported  = "notif_imported"
	TKeyNotifImportErr = "notif_err_import"
	TKeyNotifExported  = "notif_exported"
	TKeyEvtSummaryAge  = "event_summary_age" // Requires Name, Age
	TKeyEvtBirth       = "event_summary_birth"

	// Validation Errors (field-level, keyed by engine error code)
	TKeyErrRequired    = "err_required"
	TKeyErrNotANumber  = "err_not_a_number"
	TKeyErrYearTooOld  = "err_year_too_old"
	TKeyErrYearFuture  = "err_year_future"
	TKeyErrMonthRange  = "err_month_range"
	TKeyErrDayTooSmall = "err_day_too_small"
	TKeyErrDayTooLarge = "err_day_too_large"
	TKeyErrDayMonthFit = "err_day_month_fit" // Requires Max
	TKeyErrDayFebLeap  = "err_day_feb_leap"
	TKeyErrInvalidDate = "err_invalid_date"

	// Settings validation
	TKeyErrPortReq   = "err_port_required"
	TKeyErrPortNum   = "err_port_number"
	TKeyErrPortRange = "err_port_range"
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	SourceModeWeb     = "web"
	SourceModeLocal   = "local"
	DefaultPort       = "18081"
	DefaultLanguage   = "en"
	DefaultLeapYear   = 2000 // Leap year fallback for dates like --02-29
	DefaultRemDays    = 1
	UIDSalt           = "go-age-v1-" // Salt for deterministic UID generation
	ISONegativePrefix = "-P"
	ISODay            = "D"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	// iCal Properties
	ICalVersion   = "2.0"
	ICalProdid    = "-//Go Age//Engine//EN"
	ICalCalName   = "Birthday"
	ICalMethod    = "PUBLISH"
	ICalScale     = "GREGORIAN"
	ICalComponent = "VALARM"
	ICalAction    = "DISPLAY"
	ICalDomain    = "goage"

	PropUID         = "UID"
	PropSummary     = "SUMMARY"
	PropDTStart     = "DTSTART"
	PropDTStamp     = "DTSTAMP"
	PropRefresh     = "REFRESH-INTERVAL"
	PropAction      = "ACTION"
	PropDescription = "DESCRIPTION"
	PropTrigger     = "TRIGGER"
	PropVersion     = "VERSION"
	PropProdid      = "PRODID"
	PropXWRCalName  = "X-WR-CALNAME"
	PropCalScale    = "CALSCALE"
	PropMethod      = "METHOD"

	VCardBDAY = "BDAY"
	VCardFN   = "FN"
	VCardN    = "N"

	DefaultICalRefresh = 24 * time.Hour
)

// -----------------------------------------------------------------------------
// Data Formats, Limits & File Extensions
// -----------------------------------------------------------------------------

const (
	// Date layouts used for parsing vCard BDAY fields
	DateFormatFullDash  = "2006-01-02"
	DateFormatFullBasic = "20060102"
	DateFormatRFC3339   = time.RFC3339
	DateFormatFullT     = "2006-01-02T15:04:05Z"
	DateFormatNoYearD   = "--01-02"
	DateFormatNoYearB   = "--0102"

	// Limits
	MinPort = 1
	MaxPort = 65535

	// UID Generation
	UIDHashLength   = 16
	FormatHashInput = "%s|%s|%s"
	FormatUID       = "%s-%d@%s"

	// File Extensions
	ExtVCF   = ".vcf"
	ExtVCard = ".vcard"
	ExtICS   = ".ics"
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	HTTPTimeout         = 30 * time.Second
	ShutdownTimeout     = 5 * time.Second
	ServerReadTimeout   = 10 * time.Second
	ServerWriteTimeout  = 30 * time.Second
	ServerIdleTimeout   = 60 * time.Second
	RetryAfterSeconds   = "10"
	AllowedMethods      = "GET, HEAD"
	MaxHTTPResponseSize = 16 * 1024 * 1024 // 16MB; contact cards are tiny
	SchemeHTTP          = "http"
	SchemeHTTPS         = "https"
	RouteRoot           = "/"
	AddrSeparator       = ":"
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType     = "Content-Type"
	HeaderCacheControl    = "Cache-Control"
	HeaderETag            = "ETag"
	HeaderLastModified    = "Last-Modified"
	HeaderRetryAfter      = "Retry-After"
	HeaderAllow           = "Allow"
	HeaderXContentType    = "X-Content-Type-Options"
	HeaderUserAgent       = "User-Agent"
	HeaderIfNoneMatch     = "If-None-Match"
	HeaderIfModifiedSince = "If-Modified-Since"

	MimeTextCalendar    = "text/calendar; charset=utf-8"
	MimeNoSniff         = "nosniff"
	CacheControlPrivate = "private, no-cache"

	// FormatETag expects a string argument.
	FormatETag = `"%s"`
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrLocalPathEmpty = "configuration error: local path is empty"
	ErrWebURLEmpty    = "configuration error: web URL is empty"
	ErrFetcherMissing = "internal error: network fetcher is not initialized"
	ErrModeUnsupport  = "configuration error: unsupported source mode"
	ErrServerStartup  = "server startup failed"
	ErrServerShutdown = "server shutdown failed"
	ErrPortRequired   = "server port is required"
	ErrInvalidURL     = "invalid URL structure"
	ErrProtocol       = "unsupported protocol scheme (http/https only)"
	ErrVCardParse     = "failed to parse vCard stream"
	ErrNoBirthday     = "no contact with a usable birthday found"
	ErrICalEncode     = "failed to encode iCalendar data"
	ErrDateParse      = "unable to parse date"
	ErrMonthContract  = "month out of range"
	ErrLogFile        = "failed to open log file"
	ErrCacheDir       = "could not determine user cache dir"
	ErrCreateDir      = "could not create app cache dir"
	ErrAppFailed      = "application failed unexpectedly"
	ErrWriteResp      = "failed to write response body"
	ErrLocalesAccess  = "failed to access embedded locales"
	ErrLocaleLoad     = "failed to load locale file"
	ErrTrayNotSupport = "system tray not supported on this platform/driver"
)

// -----------------------------------------------------------------------------
// HTTP Server Responses
// -----------------------------------------------------------------------------

const (
	HTTPMsgInitializing = "Calendar initializing, validate a birth date first."
	HTTPMsgMethodNotAll = "Method Not Allowed"
)

// -----------------------------------------------------------------------------
// Fallbacks & Defaults
// -----------------------------------------------------------------------------

const (
	FallbackSummaryAge   = "Birthday: %s (%d)"
	FallbackSummaryBirth = "Birthday: %s (birth)"
	FallbackName         = "Unknown"
	FallbackResult       = "%d years, %d months, %d days"

	// StubVCalendar is the minimal valid iCalendar object served before the
	// first successful validation, so clients never see an invalid feed.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"

	TitleStartupError = "Startup Error"
	TitleImportError  = "Import Error"

	MsgPortBusy      = "Port %s is busy or unavailable."
	MsgAppStop       = "Application stopped gracefully"
	MsgCtxCancel     = "Context cancelled, shutting down UI"
	MsgAppStarting   = "Starting application"
	MsgServerListen  = "HTTP server listening"
	MsgServerStop    = "Shutting down HTTP server..."
	MsgCacheUpdated  = "Calendar cache updated"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
	MsgPassFail      = "Password retrieval failed (might be empty)"
	MsgLogWarning    = "Warning: %s at %s: %v\n"
	MsgValidated     = "Birth date validated"
	MsgValidationErr = "Validation rejected input"
	MsgAgeComputed   = "Age computed"
	MsgImportStart   = "vCard import started"
	MsgImportDone    = "vCard import finished"
	MsgImportFailed  = "vCard import failed"
	MsgExportDone    = "Calendar export finished"
	MsgSkippedCard   = "Skipping malformed vCard"
	MsgSkippedDate   = "Skipping invalid date format"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyURL       = "url"
	LogKeyStatus    = "status_code"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyPort      = "port"
	LogKeyMode      = "mode"
	LogKeyField     = "field"
	LogKeyCode      = "code"
	LogKeyCount     = "count"
	LogKeyName      = "name"
	LogKeyDOB       = "date_of_birth"
	LogKeyYears     = "years"
	LogKeyMonths    = "months"
	LogKeyDays      = "days"
	LogKeySizeBytes = "size_bytes"
	LogKeyETag      = "etag"
	LogKeyValue     = "value"
	LogKeyDuration  = "duration_ms"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI      = "ui"
	CompUISet   = "ui_settings"
	CompEngine  = "engine"
	CompServer  = "server"
	CompFetcher = "fetcher"
	CompMain    = "main"
	CompI18n    = "i18n"
)

// -----------------------------------------------------------------------------
// UI Layout Constants
// -----------------------------------------------------------------------------

const (
	LayoutColumnsDouble = 2
	LayoutColumnsTriple = 3
)
