package routing

import (
	"github.com/kickai/agentmatch/capability"
)

// DefaultRules returns the built-in command routing table for the KICKAI
// bot. Priorities follow the original ordering: player and match commands
// outrank administrative ones, and /help sits lowest so every other rule
// gets a chance at ambiguous text.
func DefaultRules() []Rule {
	return []Rule{
		{
			Command:     "/register",
			Aliases:     []string{"/signup"},
			Keywords:    []string{"register", "sign up", "join the team"},
			Role:        capability.RolePlayerCoordinator,
			Capability:  capability.PlayerRegistration,
			Priority:    90,
			Description: "Register as a player with the team",
		},
		{
			Command:     "/approve",
			Keywords:    []string{"approve", "reject"},
			Role:        capability.RolePlayerCoordinator,
			Capability:  capability.PlayerApproval,
			Priority:    85,
			Description: "Approve or reject a pending registration",
		},
		{
			Command:     "/myinfo",
			Aliases:     []string{"/info", "/profile"},
			Keywords:    []string{"my info", "my profile", "my details"},
			Role:        capability.RolePlayerCoordinator,
			Capability:  capability.PlayerProfileManagement,
			Priority:    80,
			Description: "Show your player profile",
		},
		{
			Command:     "/update",
			Keywords:    []string{"update my", "change my"},
			Role:        capability.RolePlayerCoordinator,
			Capability:  capability.PlayerProfileManagement,
			Priority:    75,
			Description: "Update your player details",
		},
		{
			Command:     "/list",
			Aliases:     []string{"/players"},
			Keywords:    []string{"list players", "squad list"},
			Role:        capability.RolePlayerCoordinator,
			Capability:  capability.PlayerLookup,
			Priority:    70,
			Description: "List registered players",
		},
		{
			Command:     "/addmatch",
			Aliases:     []string{"/newmatch"},
			Keywords:    []string{"add match", "new match", "schedule match"},
			Role:        capability.RoleMatchCoordinator,
			Capability:  capability.MatchScheduling,
			Priority:    88,
			Description: "Schedule a new match",
		},
		{
			Command:     "/matches",
			Aliases:     []string{"/fixtures"},
			Keywords:    []string{"fixtures", "upcoming matches", "next match"},
			Role:        capability.RoleMatchCoordinator,
			Capability:  capability.FixtureManagement,
			Priority:    78,
			Description: "List upcoming matches",
		},
		{
			Command:     "/availability",
			Aliases:     []string{"/available"},
			Keywords:    []string{"available", "availability", "can play", "cannot play"},
			Role:        capability.RoleMatchCoordinator,
			Capability:  capability.AvailabilityTracking,
			Priority:    86,
			Description: "Mark or view match availability",
		},
		{
			Command:     "/squad",
			Keywords:    []string{"squad", "lineup", "who is playing"},
			Role:        capability.RoleMatchCoordinator,
			Capability:  capability.SquadSelection,
			Priority:    76,
			Description: "Show the squad for the next match",
		},
		{
			Command:     "/result",
			Keywords:    []string{"result", "final score", "we won", "we lost"},
			Role:        capability.RoleMatchCoordinator,
			Capability:  capability.ResultRecording,
			Priority:    72,
			Description: "Record a match result",
		},
		{
			Command:     "/pay",
			Aliases:     []string{"/payment"},
			Keywords:    []string{"pay", "payment", "paid"},
			Role:        capability.RoleFinanceManager,
			Capability:  capability.PaymentProcessing,
			Priority:    84,
			Description: "Make or record a payment",
		},
		{
			Command:     "/outstanding",
			Aliases:     []string{"/owed"},
			Keywords:    []string{"outstanding", "owes", "who owes"},
			Role:        capability.RoleFinanceManager,
			Capability:  capability.PaymentTracking,
			Priority:    74,
			Description: "List outstanding payments",
		},
		{
			Command:     "/fine",
			Aliases:     []string{"/fines"},
			Keywords:    []string{"fine", "fined"},
			Role:        capability.RoleFinanceManager,
			Capability:  capability.FineManagement,
			Priority:    73,
			Description: "Issue or list fines",
		},
		{
			Command:     "/announce",
			Aliases:     []string{"/broadcast"},
			Keywords:    []string{"announce", "tell everyone"},
			Role:        capability.RoleMessageProcessor,
			Capability:  capability.BroadcastMessaging,
			Priority:    68,
			Description: "Send an announcement to the team",
		},
		{
			Command:     "/remind",
			Keywords:    []string{"remind", "reminder"},
			Role:        capability.RoleMessageProcessor,
			Capability:  capability.ReminderScheduling,
			Priority:    66,
			Description: "Schedule a reminder",
		},
		{
			Command:     "/stats",
			Aliases:     []string{"/statistics"},
			Keywords:    []string{"stats", "statistics", "top scorer"},
			Role:        capability.RolePerformanceAnalyst,
			Capability:  capability.StatisticsReporting,
			Priority:    64,
			Description: "Show team and player statistics",
		},
		{
			Command:     "/report",
			Keywords:    []string{"report", "monthly summary"},
			Role:        capability.RolePerformanceAnalyst,
			Capability:  capability.ReportGeneration,
			Priority:    62,
			Description: "Generate a leadership report",
		},
		{
			Command:     "/config",
			Aliases:     []string{"/settings"},
			Keywords:    []string{"configure", "settings"},
			Role:        capability.RoleTeamManager,
			Capability:  capability.TeamConfiguration,
			Priority:    60,
			Description: "Change team configuration",
		},
		{
			Command:     "/promote",
			Aliases:     []string{"/demote"},
			Keywords:    []string{"promote", "demote", "make captain"},
			Role:        capability.RoleTeamManager,
			Capability:  capability.RoleAssignment,
			Priority:    58,
			Description: "Change a member's leadership role",
		},
		{
			// No fixed role: resolved through the matrix so onboarding load
			// can move between the coordinator and the onboarding agent.
			Command:     "/onboard",
			Keywords:    []string{"onboarding", "new here", "how do i join"},
			Capability:  capability.PlayerOnboarding,
			Priority:    82,
			Description: "Start or continue player onboarding",
		},
		{
			Command:     "/help",
			Aliases:     []string{"/start", "/commands"},
			Keywords:    []string{"help"},
			Role:        capability.RoleCommandFallback,
			Capability:  capability.HelpProvision,
			Priority:    10,
			Description: "Show available commands",
		},
	}
}
