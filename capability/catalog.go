package capability

// DefaultCatalog returns the built-in capability catalog for the KICKAI
// team assistant. The catalog is a fresh copy on every call; callers may
// modify it before handing it to NewManager.
//
// Parent/child edges are declared on both ends. NewManager rejects catalogs
// where the two sides disagree, so any edit here must keep them symmetric.
func DefaultCatalog() []Definition {
	return []Definition{
		// Data
		{
			Capability:  DataValidation,
			Level:       LevelFoundational,
			Category:    CategoryData,
			Description: "Validate inbound data against team rules and formats before it is acted on.",
			Keywords:    []string{"validate", "verify", "format"},
		},
		{
			Capability:  DataRetrieval,
			Level:       LevelFoundational,
			Category:    CategoryData,
			Description: "Fetch team, player, and match records from the team data store.",
			Keywords:    []string{"fetch", "lookup", "find"},
		},
		{
			Capability:  DataPersistence,
			Level:       LevelFoundational,
			Category:    CategoryData,
			Description: "Write and update records in the team data store.",
			Keywords:    []string{"save", "store", "update"},
		},
		{
			Capability:  ContextManagement,
			Level:       LevelFoundational,
			Category:    CategoryData,
			Description: "Track conversational and team context across a request.",
			Keywords:    []string{"context", "session"},
		},
		{
			Capability:  EntityResolution,
			Level:       LevelBasic,
			Category:    CategoryData,
			Description: "Resolve names, phone numbers, and shirt numbers to player records.",
			Keywords:    []string{"who", "identify", "resolve"},
			Dependencies: []Type{DataRetrieval},
		},

		// Communication
		{
			Capability:  MessageProcessing,
			Level:       LevelIntermediate,
			Category:    CategoryCommunication,
			Description: "Interpret inbound messages and produce an appropriate reply.",
			Keywords:    []string{"message", "reply", "respond"},
			Children:    []Type{MessageComposition},
		},
		{
			Capability:   MessageComposition,
			Level:        LevelBasic,
			Category:     CategoryCommunication,
			Description:  "Compose well-formed outbound messages for players and leadership.",
			Keywords:     []string{"compose", "write", "draft"},
			Parents:      []Type{MessageProcessing},
			Dependencies: []Type{ContextManagement},
		},
		{
			Capability:  IntentRecognition,
			Level:       LevelIntermediate,
			Category:    CategoryCommunication,
			Description: "Classify what a free-text message is asking for.",
			Keywords:    []string{"intent", "understand", "classify"},
		},
		{
			Capability:  BroadcastMessaging,
			Level:       LevelBasic,
			Category:    CategoryCommunication,
			Description: "Send announcements to the whole squad or a selected group.",
			Keywords:    []string{"announce", "broadcast", "everyone"},
			Dependencies: []Type{MessageComposition},
		},
		{
			Capability:  NotificationDelivery,
			Level:       LevelBasic,
			Category:    CategoryCommunication,
			Description: "Deliver targeted notifications to individual members.",
			Keywords:    []string{"notify", "alert", "remind"},
		},
		{
			Capability:  PollManagement,
			Level:       LevelBasic,
			Category:    CategoryCommunication,
			Description: "Create and tally squad polls.",
			Keywords:    []string{"poll", "vote"},
		},
		{
			Capability:   ReminderScheduling,
			Level:        LevelBasic,
			Category:     CategoryCommunication,
			Description:  "Schedule reminders ahead of matches, payments, and deadlines.",
			Keywords:     []string{"reminder", "schedule", "before"},
			Dependencies: []Type{NotificationDelivery},
		},
		{
			Capability:  ConversationTracking,
			Level:       LevelBasic,
			Category:    CategoryCommunication,
			Description: "Keep multi-turn conversations coherent per chat and member.",
			Keywords:    []string{"conversation", "thread"},
			Dependencies: []Type{ContextManagement},
		},

		// Player management
		{
			Capability:   PlayerRegistration,
			Level:        LevelIntermediate,
			Category:     CategoryPlayerManagement,
			Description:  "Register a new player with the team.",
			Keywords:     []string{"register", "signup", "join"},
			Children:     []Type{PlayerOnboarding},
			Dependencies: []Type{DataValidation, DataPersistence},
		},
		{
			Capability:   PlayerOnboarding,
			Level:        LevelAdvanced,
			Category:     CategoryPlayerManagement,
			Description:  "Walk a newly registered player through the full onboarding flow.",
			Keywords:     []string{"onboard", "welcome", "new player"},
			Parents:      []Type{PlayerRegistration},
			Dependencies: []Type{DataValidation, DocumentCollection},
		},
		{
			Capability:   PlayerProfileManagement,
			Level:        LevelBasic,
			Category:     CategoryPlayerManagement,
			Description:  "Maintain player profiles: position, shirt number, contact details.",
			Keywords:     []string{"profile", "myinfo", "details"},
			Dependencies: []Type{DataPersistence},
		},
		{
			Capability:  PlayerStatusTracking,
			Level:       LevelBasic,
			Category:    CategoryPlayerManagement,
			Description: "Track each player's status: pending, approved, active, inactive.",
			Keywords:    []string{"status", "active", "pending"},
		},
		{
			Capability:   PlayerApproval,
			Level:        LevelIntermediate,
			Category:     CategoryPlayerManagement,
			Description:  "Approve or reject pending player registrations.",
			Keywords:     []string{"approve", "reject", "pending"},
			Dependencies: []Type{PlayerStatusTracking},
		},
		{
			Capability:   PlayerLookup,
			Level:        LevelBasic,
			Category:     CategoryPlayerManagement,
			Description:  "Find a player by name, phone number, or player ID.",
			Keywords:     []string{"player", "lookup", "who is"},
			Dependencies: []Type{EntityResolution},
		},
		{
			Capability:   SquadSelection,
			Level:        LevelAdvanced,
			Category:     CategoryPlayerManagement,
			Description:  "Select a match squad from available, eligible players.",
			Keywords:     []string{"squad", "select", "lineup"},
			Dependencies: []Type{AvailabilityTracking, PlayerStatusTracking},
		},
		{
			Capability:  InjuryTracking,
			Level:       LevelBasic,
			Category:    CategoryPlayerManagement,
			Description: "Record injuries and expected return dates.",
			Keywords:    []string{"injury", "injured", "fitness"},
		},

		// Match management
		{
			Capability:  MatchScheduling,
			Level:       LevelIntermediate,
			Category:    CategoryMatchManagement,
			Description: "Create and reschedule matches.",
			Keywords:    []string{"match", "schedule", "fixture", "game"},
			Children:    []Type{FixtureManagement},
		},
		{
			Capability:  FixtureManagement,
			Level:       LevelBasic,
			Category:    CategoryMatchManagement,
			Description: "Maintain the season fixture list: dates, opponents, competitions.",
			Keywords:    []string{"fixtures", "season", "opponent"},
			Parents:     []Type{MatchScheduling},
		},
		{
			Capability:   AvailabilityTracking,
			Level:        LevelIntermediate,
			Category:     CategoryMatchManagement,
			Description:  "Collect and track player availability for upcoming matches.",
			Keywords:     []string{"available", "availability", "attend"},
			Dependencies: []Type{DataRetrieval, NotificationDelivery},
		},
		{
			Capability:  AttendanceRecording,
			Level:       LevelBasic,
			Category:    CategoryMatchManagement,
			Description: "Record who actually showed up on match day.",
			Keywords:    []string{"attendance", "showed", "turnout"},
		},
		{
			Capability:   SquadAnnouncement,
			Level:        LevelBasic,
			Category:     CategoryMatchManagement,
			Description:  "Announce the selected squad for a match.",
			Keywords:     []string{"squad", "announce", "selected"},
			Dependencies: []Type{SquadSelection, BroadcastMessaging},
		},
		{
			Capability:  ResultRecording,
			Level:       LevelBasic,
			Category:    CategoryMatchManagement,
			Description: "Record match results, scorers, and cards.",
			Keywords:    []string{"result", "score", "won", "lost"},
		},
		{
			Capability:  VenueManagement,
			Level:       LevelBasic,
			Category:    CategoryMatchManagement,
			Description: "Track home and away venues, pitch details, and directions.",
			Keywords:    []string{"venue", "pitch", "where"},
		},
		{
			Capability:   MatchDayCoordination,
			Level:        LevelAdvanced,
			Category:     CategoryMatchManagement,
			Description:  "Coordinate match-day logistics end to end.",
			Keywords:     []string{"matchday", "kickoff", "meet"},
			Dependencies: []Type{SquadAnnouncement, VenueManagement},
		},

		// Financial
		{
			Capability:   PaymentProcessing,
			Level:        LevelSpecialized,
			Category:     CategoryFinancial,
			Description:  "Process member payments end to end.",
			Keywords:     []string{"pay", "payment", "paid"},
			Children:     []Type{MatchFeeCollection, FineManagement},
			Dependencies: []Type{DataValidation, PaymentTracking},
		},
		{
			Capability:  PaymentTracking,
			Level:       LevelIntermediate,
			Category:    CategoryFinancial,
			Description: "Track who has paid what and what is outstanding.",
			Keywords:    []string{"owes", "outstanding", "balance"},
		},
		{
			Capability:  MatchFeeCollection,
			Level:       LevelIntermediate,
			Category:    CategoryFinancial,
			Description: "Collect per-match fees from players who featured.",
			Keywords:    []string{"match fee", "fees", "subs"},
			Parents:     []Type{PaymentProcessing},
		},
		{
			Capability:  FineManagement,
			Level:       LevelIntermediate,
			Category:    CategoryFinancial,
			Description: "Issue, dispute, and settle club fines.",
			Keywords:    []string{"fine", "fined", "penalty"},
			Parents:     []Type{PaymentProcessing},
		},
		{
			Capability:   BudgetReporting,
			Level:        LevelAdvanced,
			Category:     CategoryFinancial,
			Description:  "Summarize club income and spend for leadership.",
			Keywords:     []string{"budget", "finances", "treasury"},
			Dependencies: []Type{ExpenseTracking, PaymentTracking},
		},
		{
			Capability:  ExpenseTracking,
			Level:       LevelBasic,
			Category:    CategoryFinancial,
			Description: "Record club expenses: pitch hire, referees, equipment.",
			Keywords:    []string{"expense", "spent", "cost"},
		},

		// Administration
		{
			Capability:  TeamAdministration,
			Level:       LevelAdvanced,
			Category:    CategoryAdministration,
			Description: "Administer team-wide settings and membership.",
			Keywords:    []string{"admin", "team", "settings"},
		},
		{
			Capability:  TeamConfiguration,
			Level:       LevelIntermediate,
			Category:    CategoryAdministration,
			Description: "Configure team identity, chats, and feature toggles.",
			Keywords:    []string{"configure", "setup", "toggle"},
		},
		{
			Capability:   RoleAssignment,
			Level:        LevelIntermediate,
			Category:     CategoryAdministration,
			Description:  "Assign and revoke leadership roles for members.",
			Keywords:     []string{"promote", "demote", "captain"},
			Dependencies: []Type{PermissionManagement},
		},
		{
			Capability:  PermissionManagement,
			Level:       LevelIntermediate,
			Category:    CategoryAdministration,
			Description: "Maintain who may run which commands in which chat.",
			Keywords:    []string{"permission", "allowed", "access"},
		},
		{
			Capability:  MemberManagement,
			Level:       LevelBasic,
			Category:    CategoryAdministration,
			Description: "Add, remove, and list team members.",
			Keywords:    []string{"member", "add", "remove"},
		},

		// Analysis
		{
			Capability:  PerformanceAnalysis,
			Level:       LevelAdvanced,
			Category:    CategoryAnalysis,
			Description: "Analyze player and team performance over time.",
			Keywords:    []string{"performance", "form", "analysis"},
			Children:    []Type{TrendDetection},
		},
		{
			Capability:   StatisticsReporting,
			Level:        LevelIntermediate,
			Category:     CategoryAnalysis,
			Description:  "Produce appearance, goal, and attendance statistics.",
			Keywords:     []string{"stats", "statistics", "top scorer"},
			Dependencies: []Type{DataRetrieval},
		},
		{
			Capability:  TrendDetection,
			Level:       LevelAdvanced,
			Category:    CategoryAnalysis,
			Description: "Spot trends in results, availability, and payment behavior.",
			Keywords:    []string{"trend", "pattern", "over time"},
			Parents:     []Type{PerformanceAnalysis},
		},
		{
			Capability:   ReportGeneration,
			Level:        LevelIntermediate,
			Category:     CategoryAnalysis,
			Description:  "Generate periodic reports for leadership.",
			Keywords:     []string{"report", "summary", "monthly"},
			Dependencies: []Type{StatisticsReporting},
		},
		{
			Capability:  OppositionAnalysis,
			Level:       LevelSpecialized,
			Category:    CategoryAnalysis,
			Description: "Summarize past results and patterns against an opponent.",
			Keywords:    []string{"opposition", "against", "head to head"},
		},
		{
			Capability:  LearningAdaptation,
			Level:       LevelSpecialized,
			Category:    CategoryAnalysis,
			Description: "Adapt routing and phrasing from observed outcomes.",
			Keywords:    []string{"learn", "improve", "adapt"},
		},
		{
			Capability:   FeedbackIncorporation,
			Level:        LevelAdvanced,
			Category:     CategoryAnalysis,
			Description:  "Fold explicit member feedback into future behavior.",
			Keywords:     []string{"feedback", "suggestion"},
			Dependencies: []Type{LearningAdaptation},
		},

		// Onboarding
		{
			Capability:  OnboardingGuidance,
			Level:       LevelAdvanced,
			Category:    CategoryOnboarding,
			Description: "Guide a new player through every onboarding step.",
			Keywords:    []string{"onboarding", "guide", "next step"},
			Children:    []Type{RegistrationAssistance},
		},
		{
			Capability:  RegistrationAssistance,
			Level:       LevelIntermediate,
			Category:    CategoryOnboarding,
			Description: "Help a player complete the registration form correctly.",
			Keywords:    []string{"help register", "form", "assist"},
			Parents:     []Type{OnboardingGuidance},
		},
		{
			Capability:   WelcomeMessaging,
			Level:        LevelBasic,
			Category:     CategoryOnboarding,
			Description:  "Welcome new members and point them at the essentials.",
			Keywords:     []string{"welcome", "hello", "new here"},
			Dependencies: []Type{MessageComposition},
		},
		{
			Capability:  DocumentCollection,
			Level:       LevelBasic,
			Category:    CategoryOnboarding,
			Description: "Collect registration documents and emergency contacts.",
			Keywords:    []string{"document", "id", "emergency contact"},
		},
		{
			Capability:  OnboardingProgress,
			Level:       LevelIntermediate,
			Category:    CategoryOnboarding,
			Description: "Track how far each new player has progressed through onboarding.",
			Keywords:    []string{"progress", "completed", "remaining"},
		},

		// Coordination
		{
			Capability:  TaskDelegation,
			Level:       LevelAdvanced,
			Category:    CategoryCoordination,
			Description: "Split a request into tasks and hand them to other agents.",
			Keywords:    []string{"delegate", "assign", "task"},
		},
		{
			Capability:   AgentRouting,
			Level:        LevelAdvanced,
			Category:     CategoryCoordination,
			Description:  "Decide which agent should handle a given request.",
			Keywords:     []string{"route", "dispatch"},
			Dependencies: []Type{IntentRecognition, CommandParsing},
		},
		{
			Capability:   WorkflowOrchestration,
			Level:        LevelSpecialized,
			Category:     CategoryCoordination,
			Description:  "Run multi-step workflows spanning several agents.",
			Keywords:     []string{"workflow", "steps", "orchestrate"},
			Dependencies: []Type{TaskDelegation},
		},
		{
			Capability:  EscalationHandling,
			Level:       LevelIntermediate,
			Category:    CategoryCoordination,
			Description: "Escalate to leadership when an agent cannot resolve a request.",
			Keywords:    []string{"escalate", "leadership", "urgent"},
		},
		{
			Capability:  MultiAgentCollaboration,
			Level:       LevelSpecialized,
			Category:    CategoryCoordination,
			Description: "Coordinate several agents contributing to one answer.",
			Keywords:    []string{"collaborate", "together"},
		},

		// System
		{
			Capability:  CommandParsing,
			Level:       LevelFoundational,
			Category:    CategorySystem,
			Description: "Parse slash commands and their arguments.",
			Keywords:    []string{"command", "slash"},
		},
		{
			Capability:  CommandFallbackHandling,
			Level:       LevelBasic,
			Category:    CategorySystem,
			Description: "Handle unknown commands and unroutable requests gracefully.",
			Keywords:    []string{"unknown", "fallback"},
		},
		{
			Capability:  HelpProvision,
			Level:       LevelBasic,
			Category:    CategorySystem,
			Description: "Explain available commands and what they do.",
			Keywords:    []string{"help", "how do i", "usage"},
		},
		{
			Capability:  ErrorRecovery,
			Level:       LevelIntermediate,
			Category:    CategorySystem,
			Description: "Recover from failed operations with a useful reply.",
			Keywords:    []string{"error", "failed", "retry"},
		},
		{
			Capability:  SystemMonitoring,
			Level:       LevelIntermediate,
			Category:    CategorySystem,
			Description: "Watch system health and surface degradations.",
			Keywords:    []string{"health", "monitor", "uptime"},
		},
		{
			Capability:  PermissionChecking,
			Level:       LevelFoundational,
			Category:    CategorySystem,
			Description: "Check a member's permission before executing a command.",
			Keywords:    []string{"permission", "can i"},
		},
	}
}
