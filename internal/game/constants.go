package game

// Timing
const (
	FrameRate    = 60
	FrameStep    = 1.0 / FrameRate // nominal seconds per frame, independent of wall time
	RoundSeconds = 30
)

// Player ("building")
const (
	PlayerSpeed = 200.0 // pixels per second
	PlayerScale = 0.15
)

// Pursuer ("law")
const (
	PursuerSpeed   = 150.0
	PursuerScale   = 0.12
	DeferenceSpeed = 180.0
)

// Hunt ramp: pursuer speed climbs from 90% to 110% of its reference over HuntRampTime.
const (
	HuntRampTime  = 5.0 // seconds
	HuntRampStart = 0.9
	HuntRampSpan  = 0.2
)

// Contact
const (
	CollisionDistance = 40.0 // anchor-to-anchor, never scaled
	WarningDistance   = 100.0
)

// Playfield defaults (800x600 canvas)
const (
	DefaultWidth          = 800.0
	DefaultHeight         = 600.0
	DefaultTop            = 130.0
	PlayfieldMargin       = 20.0
	PlayfieldBottomMargin = 60.0
)

// Virtual joystick
const (
	JoystickActivation  = 10.0 // minimum drag distance before the stick moves the player
	JoystickBaseRadius  = 60.0
	JoystickThumbRadius = 25.0
	JoystickCapture     = 1.5 // press must land within BaseRadius*JoystickCapture of the anchor
	JoystickInset       = 100.0
)

// Article 78
const (
	SlowdownDecay     = 0.85
	SlowdownMinSpeed  = 20.0
	SlowdownFrozenAt  = SlowdownMinSpeed + 5
	SlowdownKnockback = 200.0
)

// F.A.R.
const (
	ShrinkDecay      = 0.85
	ShrinkMinScale   = 0.03
	ShrinkKnockback  = 250.0
	ShrinkMaxContact = 10
)

// Member Deference
const (
	RecoveryPromptDelay = 0.6 // seconds between the fatal contact and the recovery prompt
	RecoveryScore       = 1000.0
	DeferenceBaseScore  = 100.0
)
