package capability

// Type identifies a named skill an agent may hold.
type Type string

// Data capabilities.
const (
	DataValidation    Type = "data_validation"
	DataRetrieval     Type = "data_retrieval"
	DataPersistence   Type = "data_persistence"
	ContextManagement Type = "context_management"
	EntityResolution  Type = "entity_resolution"
)

// Communication capabilities.
const (
	MessageProcessing    Type = "message_processing"
	MessageComposition   Type = "message_composition"
	IntentRecognition    Type = "intent_recognition"
	BroadcastMessaging   Type = "broadcast_messaging"
	NotificationDelivery Type = "notification_delivery"
	PollManagement       Type = "poll_management"
	ReminderScheduling   Type = "reminder_scheduling"
	ConversationTracking Type = "conversation_tracking"
)

// Player management capabilities.
const (
	PlayerRegistration      Type = "player_registration"
	PlayerOnboarding        Type = "player_onboarding"
	PlayerProfileManagement Type = "player_profile_management"
	PlayerStatusTracking    Type = "player_status_tracking"
	PlayerApproval          Type = "player_approval"
	PlayerLookup            Type = "player_lookup"
	SquadSelection          Type = "squad_selection"
	InjuryTracking          Type = "injury_tracking"
)

// Match management capabilities.
const (
	MatchScheduling      Type = "match_scheduling"
	FixtureManagement    Type = "fixture_management"
	AvailabilityTracking Type = "availability_tracking"
	AttendanceRecording  Type = "attendance_recording"
	SquadAnnouncement    Type = "squad_announcement"
	ResultRecording      Type = "result_recording"
	VenueManagement      Type = "venue_management"
	MatchDayCoordination Type = "match_day_coordination"
)

// Financial capabilities.
const (
	PaymentProcessing  Type = "payment_processing"
	PaymentTracking    Type = "payment_tracking"
	MatchFeeCollection Type = "match_fee_collection"
	FineManagement     Type = "fine_management"
	BudgetReporting    Type = "budget_reporting"
	ExpenseTracking    Type = "expense_tracking"
)

// Administration capabilities.
const (
	TeamAdministration   Type = "team_administration"
	TeamConfiguration    Type = "team_configuration"
	RoleAssignment       Type = "role_assignment"
	PermissionManagement Type = "permission_management"
	MemberManagement     Type = "member_management"
)

// Analysis capabilities.
const (
	PerformanceAnalysis  Type = "performance_analysis"
	StatisticsReporting  Type = "statistics_reporting"
	TrendDetection       Type = "trend_detection"
	ReportGeneration     Type = "report_generation"
	OppositionAnalysis   Type = "opposition_analysis"
	LearningAdaptation   Type = "learning_adaptation"
	FeedbackIncorporation Type = "feedback_incorporation"
)

// Onboarding capabilities.
const (
	OnboardingGuidance     Type = "onboarding_guidance"
	RegistrationAssistance Type = "registration_assistance"
	WelcomeMessaging       Type = "welcome_messaging"
	DocumentCollection     Type = "document_collection"
	OnboardingProgress     Type = "onboarding_progress_tracking"
)

// Coordination capabilities.
const (
	TaskDelegation          Type = "task_delegation"
	AgentRouting            Type = "agent_routing"
	WorkflowOrchestration   Type = "workflow_orchestration"
	EscalationHandling      Type = "escalation_handling"
	MultiAgentCollaboration Type = "multi_agent_collaboration"
)

// System capabilities.
const (
	CommandParsing          Type = "command_parsing"
	CommandFallbackHandling Type = "command_fallback_handling"
	HelpProvision           Type = "help_provision"
	ErrorRecovery           Type = "error_recovery"
	SystemMonitoring        Type = "system_monitoring"
	PermissionChecking      Type = "permission_checking"
)

// Level places a capability on the foundational-to-specialized scale.
type Level string

const (
	// LevelFoundational marks capabilities every agent is expected to hold.
	LevelFoundational Level = "foundational"
	// LevelBasic marks common single-step capabilities.
	LevelBasic Level = "basic"
	// LevelIntermediate marks capabilities combining several basic skills.
	LevelIntermediate Level = "intermediate"
	// LevelAdvanced marks capabilities requiring domain judgment.
	LevelAdvanced Level = "advanced"
	// LevelSpecialized marks capabilities owned by a single dedicated agent.
	LevelSpecialized Level = "specialized"
)

// levelRanks orders levels from foundational (lowest) to specialized.
var levelRanks = map[Level]int{
	LevelFoundational: 1,
	LevelBasic:        2,
	LevelIntermediate: 3,
	LevelAdvanced:     4,
	LevelSpecialized:  5,
}

// Rank returns the ordinal position of the level, foundational first.
// Unknown levels rank 0.
func (l Level) Rank() int {
	return levelRanks[l]
}

// Valid reports whether the level is a known value.
func (l Level) Valid() bool {
	_, ok := levelRanks[l]
	return ok
}

// Category tags a capability with its functional area.
type Category string

const (
	CategoryCommunication    Category = "communication"
	CategoryPlayerManagement Category = "player_management"
	CategoryMatchManagement  Category = "match_management"
	CategoryFinancial        Category = "financial"
	CategoryAdministration   Category = "administration"
	CategoryAnalysis         Category = "analysis"
	CategoryOnboarding       Category = "onboarding"
	CategoryCoordination     Category = "coordination"
	CategorySystem           Category = "system"
	CategoryData             Category = "data"
)

// Categories lists all known categories in a fixed order.
func Categories() []Category {
	return []Category{
		CategoryCommunication,
		CategoryPlayerManagement,
		CategoryMatchManagement,
		CategoryFinancial,
		CategoryAdministration,
		CategoryAnalysis,
		CategoryOnboarding,
		CategoryCoordination,
		CategorySystem,
		CategoryData,
	}
}

// Levels lists all known levels ordered foundational first.
func Levels() []Level {
	return []Level{
		LevelFoundational,
		LevelBasic,
		LevelIntermediate,
		LevelAdvanced,
		LevelSpecialized,
	}
}

// AgentRole identifies a functional agent in the multi-agent system.
type AgentRole string

const (
	// RoleMessageProcessor handles inbound message interpretation and replies.
	RoleMessageProcessor AgentRole = "message_processor"
	// RoleTeamManager handles team administration and configuration.
	RoleTeamManager AgentRole = "team_manager"
	// RolePlayerCoordinator handles player registration and profile upkeep.
	RolePlayerCoordinator AgentRole = "player_coordinator"
	// RoleMatchCoordinator handles fixtures, availability, and squads.
	RoleMatchCoordinator AgentRole = "match_coordinator"
	// RoleFinanceManager handles payments, fees, and fines.
	RoleFinanceManager AgentRole = "finance_manager"
	// RolePerformanceAnalyst handles statistics and reporting.
	RolePerformanceAnalyst AgentRole = "performance_analyst"
	// RoleLearningAgent improves routing and responses from feedback.
	RoleLearningAgent AgentRole = "learning_agent"
	// RoleOnboardingAgent guides new players through onboarding.
	RoleOnboardingAgent AgentRole = "onboarding_agent"
	// RoleCommandFallback answers anything no other agent claims.
	RoleCommandFallback AgentRole = "command_fallback_agent"
)

// Roles lists all known agent roles in matrix seed order.
func Roles() []AgentRole {
	return []AgentRole{
		RoleMessageProcessor,
		RoleTeamManager,
		RolePlayerCoordinator,
		RoleMatchCoordinator,
		RoleFinanceManager,
		RolePerformanceAnalyst,
		RoleLearningAgent,
		RoleOnboardingAgent,
		RoleCommandFallback,
	}
}

// Definition describes one capability: what it is, where it sits in the
// tier/category taxonomy, and how it relates to other capabilities.
// Parents, Children, and Dependencies reference other capability types and
// form a loose, manually curated DAG; most definitions leave them empty.
type Definition struct {
	// Capability is the capability this definition describes.
	Capability Type `yaml:"capability" json:"capability"`

	// Level is the hierarchy tier.
	Level Level `yaml:"level" json:"level"`

	// Category is the functional area tag.
	Category Category `yaml:"category" json:"category"`

	// Description is a short human-readable summary.
	Description string `yaml:"description" json:"description"`

	// Keywords are free-text tokens used for intent inference.
	Keywords []string `yaml:"keywords,omitempty" json:"keywords,omitempty"`

	// Parents are broader capabilities this one refines.
	Parents []Type `yaml:"parents,omitempty" json:"parents,omitempty"`

	// Children are narrower capabilities refining this one.
	Children []Type `yaml:"children,omitempty" json:"children,omitempty"`

	// Dependencies are capabilities this one builds on.
	Dependencies []Type `yaml:"dependencies,omitempty" json:"dependencies,omitempty"`
}

// Profile records one agent role's competence at one capability.
type Profile struct {
	// Capability is the capability the profile scores.
	Capability Type `yaml:"capability" json:"capability"`

	// Proficiency is the competence score in [0.0, 1.0].
	Proficiency float64 `yaml:"proficiency" json:"proficiency"`

	// Primary marks the capability as part of the role's main duty.
	Primary bool `yaml:"primary,omitempty" json:"primary,omitempty"`

	// Specialized marks the role as the dedicated owner of the capability.
	Specialized bool `yaml:"specialized,omitempty" json:"specialized,omitempty"`

	// Confidence is how reliable the proficiency estimate is, in [0.0, 1.0].
	Confidence float64 `yaml:"confidence" json:"confidence"`
}

// RoleProfiles binds an agent role to its capability profiles. The matrix is
// an ordered slice of these so that tie-breaks in best-agent selection follow
// seed order deterministically.
type RoleProfiles struct {
	// Role is the agent role the profiles belong to.
	Role AgentRole `yaml:"role" json:"role"`

	// Profiles are the role's capability scores in seed order.
	Profiles []Profile `yaml:"profiles" json:"profiles"`
}

// Hierarchy is the neighborhood of one capability in the taxonomy DAG.
// Siblings is carried for shape compatibility with the original taxonomy but
// is never populated; no heuristic for it was ever defined.
type Hierarchy struct {
	Parents      []Type `json:"parents"`
	Children     []Type `json:"children"`
	Siblings     []Type `json:"siblings"`
	Dependencies []Type `json:"dependencies"`
}

// Summary aggregates catalog and matrix counts.
type Summary struct {
	// TotalCapabilities is the number of defined capabilities.
	TotalCapabilities int `json:"total_capabilities"`

	// TotalRoles is the number of roles in the matrix.
	TotalRoles int `json:"total_roles"`

	// ByLevel counts definitions per tier.
	ByLevel map[Level]int `json:"by_level"`

	// ByCategory counts definitions per category.
	ByCategory map[Category]int `json:"by_category"`

	// ByRole counts profiles per agent role.
	ByRole map[AgentRole]int `json:"by_role"`
}
