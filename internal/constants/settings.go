package constants

const (
	// Font selection
	SettingFontsEnabled          = "fontsEnabled"
	SettingGlobalFont            = "globalFont"
	SettingBodyFont              = "bodyFont"
	SettingDialogueFont          = "dialogueFont"
	SettingCustomFont            = "customFont"
	SettingCustomFontOpen        = "customFontOpen"
	SettingCustomFontClose       = "customFontClose"
	SettingCustomFontWrapEnabled = "customFontWrapEnabled"
	SettingLocaleFontEnabled     = "localeFontEnabled"
	SettingLocaleFonts           = "localeFonts"
	SettingImportedFonts         = "importedFonts"
	SettingChatFontImportEnabled = "chatFontImportEnabled"

	// Typography
	SettingBodyFontSize          = "bodyFontSize"
	SettingBodyLetterSpacing     = "bodyLetterSpacing"
	SettingDialogueFontSize      = "dialogueFontSize"
	SettingDialogueLetterSpacing = "dialogueLetterSpacing"
	SettingCustomFontSize        = "customFontSize"
	SettingCustomLetterSpacing   = "customLetterSpacing"
	SettingLocaleFontSize        = "localeFontSize"
	SettingLocaleLetterSpacing   = "localeLetterSpacing"

	// Streaming
	SettingStreamRenderMode         = "streamRenderMode"
	SettingStreamAnimEffect         = "streamAnimEffect"
	SettingStreamAnimSpeed          = "streamAnimSpeed"
	SettingStreamAnimCursor         = "streamAnimCursor"
	SettingStreamAnimCursorShape    = "streamAnimCursorShape"
	SettingStreamAnimCursorAnim     = "streamAnimCursorAnim"
	SettingStreamAnimCursorImageURL = "streamAnimCursorImageUrl"

	SettingPresetsVersion = "presetsVersion"

	// Default Settings Values
	DefaultFontsEnabled          = true
	DefaultCustomFontWrapEnabled = false
	DefaultLocaleFontEnabled     = false
	DefaultChatFontImportEnabled = false
	DefaultStreamRenderMode      = RenderModeDefer
	DefaultStreamAnimEffect      = AnimEffectNone
	DefaultStreamAnimSpeed       = 20
	DefaultStreamAnimCursor      = true
	DefaultStreamCursorShape     = CursorShapeBar
	DefaultStreamCursorAnim      = CursorAnimBlink
	DefaultPresetsVersion        = 0

	// CurrentPresetsVersion is the catalog revision written after preset migration.
	CurrentPresetsVersion = 3

	// Ranges
	StreamAnimSpeedMin = 3
	StreamAnimSpeedMax = 80

	FontSizeMin  = 6.0
	FontSizeMax  = 72.0
	FontSizeStep = 0.5

	LetterSpacingMin  = -0.2
	LetterSpacingMax  = 0.5
	LetterSpacingStep = 0.01

	FontKindCSS = "css"
)

const (
	RenderModeDefer  = "defer"
	RenderModeBuffer = "buffer"

	AnimEffectNone       = "none"
	AnimEffectTypewriter = "typewriter"
	AnimEffectBlur       = "blur"
	AnimEffectGlow       = "glow"

	CursorShapeBar        = "bar"
	CursorShapeBlock      = "block"
	CursorShapeUnderscore = "underscore"
	CursorShapeHollow     = "hollow"
	CursorShapeThin       = "thin"
	CursorShapeImage      = "image"

	CursorAnimBlink   = "blink"
	CursorAnimPulse   = "pulse"
	CursorAnimSolid   = "solid"
	CursorAnimSmooth  = "smooth"
	CursorAnimElastic = "elastic"
	CursorAnimGlitch  = "glitch"
)

var (
	RenderModes  = []string{RenderModeDefer, RenderModeBuffer}
	AnimEffects  = []string{AnimEffectNone, AnimEffectTypewriter, AnimEffectBlur, AnimEffectGlow}
	CursorShapes = []string{CursorShapeBar, CursorShapeBlock, CursorShapeUnderscore, CursorShapeHollow, CursorShapeThin, CursorShapeImage}
	CursorAnims  = []string{CursorAnimBlink, CursorAnimPulse, CursorAnimSolid, CursorAnimSmooth, CursorAnimElastic, CursorAnimGlitch}
)
