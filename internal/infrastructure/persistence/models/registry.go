package models

// All returns every model in migration order
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&PasswordHistoryModel{},
		&PolicyModel{},
		&LockoutPolicyModel{},
		&AuthPolicyModel{},
		&MFAMethodModel{},
		&BackupCodeModel{},
		&OneTimeTokenModel{},
		&OneTimeCodeModel{},
		&LoginActivityModel{},
		&AuthRequestLogModel{},
		&ProfileModel{},
		&FollowModel{},
		&GroupModel{},
		&GroupMemberModel{},
		&CategoryModel{},
		&TypeModel{},
		&ScrimmageModel{},
		&ParticipationModel{},
		&EventModel{},
		&RSVPModel{},
		&CalendarItemModel{},
		&PlanModel{},
		&MembershipModel{},
		&TransactionModel{},
		&WalletModel{},
		&CreditEntryModel{},
		&BonusTierModel{},
		&OrganizerFeeModel{},
		&WebhookEventModel{},
		&NotificationModel{},
		&ThreadModel{},
		&ThreadParticipantModel{},
		&MessageModel{},
		&MessageReadModel{},
	}
}
