package capability

// DefaultMatrix returns the built-in agent capability matrix. Order matters:
// BestAgentFor breaks proficiency ties by matrix position, so the seeded
// order below is part of the routing contract. Player coordinator precedes
// onboarding agent on purpose; both score 0.95 on player onboarding and the
// coordinator wins the tie.
func DefaultMatrix() []RoleProfiles {
	return []RoleProfiles{
		{
			Role: RoleMessageProcessor,
			Profiles: []Profile{
				{Capability: MessageProcessing, Proficiency: 0.95, Primary: true, Specialized: true, Confidence: 0.9},
				{Capability: MessageComposition, Proficiency: 0.9, Primary: true, Confidence: 0.9},
				{Capability: IntentRecognition, Proficiency: 0.9, Primary: true, Confidence: 0.85},
				{Capability: ConversationTracking, Proficiency: 0.85, Confidence: 0.8},
				{Capability: CommandParsing, Proficiency: 0.9, Confidence: 0.9},
				{Capability: ContextManagement, Proficiency: 0.8, Confidence: 0.8},
				{Capability: HelpProvision, Proficiency: 0.75, Confidence: 0.8},
				{Capability: AgentRouting, Proficiency: 0.7, Confidence: 0.7},
			},
		},
		{
			Role: RoleTeamManager,
			Profiles: []Profile{
				{Capability: TeamAdministration, Proficiency: 0.95, Primary: true, Specialized: true, Confidence: 0.9},
				{Capability: TeamConfiguration, Proficiency: 0.9, Primary: true, Confidence: 0.9},
				{Capability: RoleAssignment, Proficiency: 0.9, Primary: true, Confidence: 0.85},
				{Capability: PermissionManagement, Proficiency: 0.85, Confidence: 0.85},
				{Capability: MemberManagement, Proficiency: 0.85, Confidence: 0.85},
				{Capability: EscalationHandling, Proficiency: 0.8, Confidence: 0.8},
				{Capability: BroadcastMessaging, Proficiency: 0.7, Confidence: 0.75},
				{Capability: PermissionChecking, Proficiency: 0.8, Confidence: 0.85},
			},
		},
		{
			Role: RolePlayerCoordinator,
			Profiles: []Profile{
				{Capability: PlayerRegistration, Proficiency: 0.95, Primary: true, Specialized: true, Confidence: 0.9},
				{Capability: PlayerOnboarding, Proficiency: 0.95, Primary: true, Confidence: 0.9},
				{Capability: PlayerProfileManagement, Proficiency: 0.9, Primary: true, Confidence: 0.9},
				{Capability: PlayerStatusTracking, Proficiency: 0.9, Confidence: 0.85},
				{Capability: PlayerApproval, Proficiency: 0.9, Primary: true, Confidence: 0.85},
				{Capability: PlayerLookup, Proficiency: 0.9, Confidence: 0.9},
				{Capability: InjuryTracking, Proficiency: 0.8, Confidence: 0.8},
				{Capability: EntityResolution, Proficiency: 0.8, Confidence: 0.8},
				{Capability: DataValidation, Proficiency: 0.75, Confidence: 0.85},
			},
		},
		{
			Role: RoleMatchCoordinator,
			Profiles: []Profile{
				{Capability: MatchScheduling, Proficiency: 0.95, Primary: true, Specialized: true, Confidence: 0.9},
				{Capability: FixtureManagement, Proficiency: 0.9, Primary: true, Confidence: 0.9},
				{Capability: AvailabilityTracking, Proficiency: 0.95, Primary: true, Confidence: 0.9},
				{Capability: AttendanceRecording, Proficiency: 0.85, Confidence: 0.85},
				{Capability: SquadSelection, Proficiency: 0.9, Primary: true, Confidence: 0.85},
				{Capability: SquadAnnouncement, Proficiency: 0.85, Confidence: 0.85},
				{Capability: ResultRecording, Proficiency: 0.85, Confidence: 0.85},
				{Capability: VenueManagement, Proficiency: 0.8, Confidence: 0.8},
				{Capability: MatchDayCoordination, Proficiency: 0.9, Primary: true, Confidence: 0.85},
				{Capability: ReminderScheduling, Proficiency: 0.7, Confidence: 0.75},
			},
		},
		{
			Role: RoleFinanceManager,
			Profiles: []Profile{
				{Capability: PaymentProcessing, Proficiency: 0.95, Primary: true, Specialized: true, Confidence: 0.9},
				{Capability: PaymentTracking, Proficiency: 0.95, Primary: true, Confidence: 0.9},
				{Capability: MatchFeeCollection, Proficiency: 0.9, Primary: true, Confidence: 0.9},
				{Capability: FineManagement, Proficiency: 0.9, Primary: true, Confidence: 0.85},
				{Capability: BudgetReporting, Proficiency: 0.85, Confidence: 0.8},
				{Capability: ExpenseTracking, Proficiency: 0.85, Confidence: 0.85},
				{Capability: DataValidation, Proficiency: 0.7, Confidence: 0.8},
				{Capability: ReportGeneration, Proficiency: 0.6, Confidence: 0.7},
			},
		},
		{
			Role: RolePerformanceAnalyst,
			Profiles: []Profile{
				{Capability: PerformanceAnalysis, Proficiency: 0.95, Primary: true, Specialized: true, Confidence: 0.9},
				{Capability: StatisticsReporting, Proficiency: 0.95, Primary: true, Confidence: 0.9},
				{Capability: TrendDetection, Proficiency: 0.9, Primary: true, Confidence: 0.8},
				{Capability: ReportGeneration, Proficiency: 0.9, Primary: true, Confidence: 0.85},
				{Capability: OppositionAnalysis, Proficiency: 0.85, Specialized: true, Confidence: 0.75},
				{Capability: DataRetrieval, Proficiency: 0.8, Confidence: 0.85},
				{Capability: AttendanceRecording, Proficiency: 0.6, Confidence: 0.7},
			},
		},
		{
			Role: RoleLearningAgent,
			Profiles: []Profile{
				{Capability: LearningAdaptation, Proficiency: 0.95, Primary: true, Specialized: true, Confidence: 0.8},
				{Capability: FeedbackIncorporation, Proficiency: 0.9, Primary: true, Confidence: 0.8},
				{Capability: TrendDetection, Proficiency: 0.75, Confidence: 0.7},
				{Capability: IntentRecognition, Proficiency: 0.7, Confidence: 0.7},
				{Capability: AgentRouting, Proficiency: 0.65, Confidence: 0.65},
				{Capability: SystemMonitoring, Proficiency: 0.6, Confidence: 0.7},
			},
		},
		{
			Role: RoleOnboardingAgent,
			Profiles: []Profile{
				{Capability: OnboardingGuidance, Proficiency: 0.95, Primary: true, Specialized: true, Confidence: 0.9},
				{Capability: PlayerOnboarding, Proficiency: 0.95, Primary: true, Confidence: 0.9},
				{Capability: RegistrationAssistance, Proficiency: 0.9, Primary: true, Confidence: 0.9},
				{Capability: WelcomeMessaging, Proficiency: 0.9, Primary: true, Confidence: 0.9},
				{Capability: DocumentCollection, Proficiency: 0.85, Confidence: 0.85},
				{Capability: OnboardingProgress, Proficiency: 0.9, Confidence: 0.85},
				{Capability: PlayerRegistration, Proficiency: 0.8, Confidence: 0.85},
				{Capability: MessageComposition, Proficiency: 0.7, Confidence: 0.8},
			},
		},
		{
			Role: RoleCommandFallback,
			Profiles: []Profile{
				{Capability: CommandFallbackHandling, Proficiency: 0.95, Primary: true, Specialized: true, Confidence: 0.9},
				{Capability: HelpProvision, Proficiency: 0.9, Primary: true, Confidence: 0.9},
				{Capability: ErrorRecovery, Proficiency: 0.85, Primary: true, Confidence: 0.85},
				{Capability: CommandParsing, Proficiency: 0.8, Confidence: 0.85},
				{Capability: EscalationHandling, Proficiency: 0.7, Confidence: 0.75},
				{Capability: MessageComposition, Proficiency: 0.65, Confidence: 0.75},
			},
		},
	}
}
