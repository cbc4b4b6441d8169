package v1

import (
	"github.com/MGTheTrain/scrimhub/internal/app"
	"github.com/MGTheTrain/scrimhub/internal/domain/accounts"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	services *app.Services,
	tokens accounts.TokenIssuer,
	realtimeServer RealtimeServer,
	webhookToken string) {

	v1 := r.Group(BasePath) // lookup in version file

	authHandler := NewAuthHandler(services.Auth, services.MFA)
	adminHandler := NewAdminHandler(services.AccountAdmin)
	profileHandler := NewProfileHandler(services.Profiles)
	groupHandler := NewGroupHandler(services.Groups)
	scrimmageHandler := NewScrimmageHandler(services.Scrimmages)
	eventHandler := NewEventHandler(services.Events)
	calendarHandler := NewCalendarHandler(services.Calendar)
	membershipHandler := NewMembershipHandler(services.Memberships)
	paymentHandler := NewPaymentHandler(services.Payments, services.Wallet, services.Webhooks)
	notificationHandler := NewNotificationHandler(services.Notifications)
	chatHandler := NewChatHandler(services.Chat)
	realtimeHandler := NewRealtimeHandler(realtimeServer)

	// Public auth routes
	public := v1.Group("/auth")
	public.POST("/register", authHandler.Register)
	public.POST("/email/verify", authHandler.VerifyEmail)
	public.POST("/login", authHandler.Login)
	public.POST("/token/refresh", authHandler.Refresh)
	public.POST("/logout", authHandler.Logout)
	public.POST("/password/forgot", authHandler.ForgotPassword)
	public.POST("/password/reset", authHandler.ResetPassword)
	public.POST("/magic/request", authHandler.RequestMagicLink)
	public.POST("/magic/consume", authHandler.ConsumeMagicLink)
	public.POST("/otp/request", authHandler.RequestCode)
	public.POST("/otp/verify", authHandler.VerifyCode)
	public.POST("/mfa/verify", authHandler.VerifyMFA)

	// Provider webhooks
	v1.POST("/webhooks/:provider", WebhookTokenMiddleware(webhookToken), paymentHandler.Webhook)

	// Realtime
	v1.GET("/ws", WebsocketAuthMiddleware(tokens), realtimeHandler.Connect)

	authed := v1.Group("", AuthMiddleware(tokens))

	// Session routes
	authed.GET("/auth/me", authHandler.Me)
	authed.POST("/auth/reauth", authHandler.Reauthenticate)
	authed.POST("/auth/password/change", authHandler.ChangePassword)
	authed.POST("/auth/mfa/totp/setup", authHandler.BeginTOTPSetup)
	authed.POST("/auth/mfa/totp/confirm", authHandler.ConfirmTOTP)
	authed.POST("/auth/mfa/backup-codes", authHandler.RegenerateBackupCodes)
	authed.DELETE("/auth/mfa/:type", authHandler.DisableMFA)

	// Profiles Routes
	authed.GET("/profiles/me", profileHandler.GetMine)
	authed.PATCH("/profiles/me", profileHandler.UpdateMine)
	authed.GET("/profiles/:id", profileHandler.GetByID)
	authed.POST("/profiles/:id/follow", profileHandler.ToggleFollow)
	authed.GET("/profiles/:id/followers", profileHandler.Followers)
	authed.GET("/profiles/:id/following", profileHandler.Following)

	// Groups Routes
	authed.GET("/groups", groupHandler.List)
	authed.POST("/groups", groupHandler.Create)
	authed.GET("/groups/:id", groupHandler.GetByID)
	authed.PATCH("/groups/:id", groupHandler.Update)
	authed.DELETE("/groups/:id", groupHandler.Delete)
	authed.POST("/groups/:id/join", groupHandler.Join)
	authed.POST("/groups/:id/leave", groupHandler.Leave)
	authed.GET("/groups/:id/members", groupHandler.Members)

	// Scrimmages Routes
	authed.GET("/scrimmages", scrimmageHandler.List)
	authed.POST("/scrimmages", scrimmageHandler.Create)
	authed.GET("/scrimmages/my", scrimmageHandler.Mine)
	authed.GET("/scrimmages/upcoming", scrimmageHandler.Upcoming)
	authed.GET("/scrimmages/categories", scrimmageHandler.ListCategories)
	authed.GET("/scrimmages/types", scrimmageHandler.ListTypes)
	authed.GET("/scrimmages/:id", scrimmageHandler.GetByID)
	authed.PATCH("/scrimmages/:id", scrimmageHandler.Update)
	authed.DELETE("/scrimmages/:id", scrimmageHandler.Delete)
	authed.GET("/scrimmages/:id/roster", scrimmageHandler.Roster)
	authed.POST("/scrimmages/:id/join", scrimmageHandler.Join)
	authed.POST("/scrimmages/:id/leave", scrimmageHandler.Leave)
	authed.POST("/scrimmages/:id/invite", scrimmageHandler.Invite)
	authed.POST("/scrimmages/:id/checkin", scrimmageHandler.CheckIn)
	authed.POST("/scrimmages/:id/cancel", scrimmageHandler.Cancel)
	authed.POST("/scrimmages/:id/prizes", scrimmageHandler.DistributePrizes)

	// Events Routes
	authed.GET("/events", eventHandler.List)
	authed.POST("/events", eventHandler.Create)
	authed.GET("/events/:id", eventHandler.GetByID)
	authed.PATCH("/events/:id", eventHandler.Update)
	authed.DELETE("/events/:id", eventHandler.Delete)
	authed.POST("/events/:id/rsvp", eventHandler.RSVP)
	authed.POST("/events/:id/checkin", eventHandler.CheckIn)
	authed.POST("/events/:id/cancel", eventHandler.Cancel)
	authed.GET("/events/:id/attendees", eventHandler.Attendees)

	// Calendar Routes
	authed.GET("/calendar", calendarHandler.List)
	authed.POST("/calendar", calendarHandler.Create)
	authed.GET("/calendar/feed", calendarHandler.Feed)
	authed.DELETE("/calendar/:id", calendarHandler.Delete)

	// Memberships Routes
	authed.GET("/memberships/plans", membershipHandler.ListPlans)
	authed.GET("/memberships", membershipHandler.ListMine)
	authed.POST("/memberships", membershipHandler.Subscribe)
	authed.GET("/memberships/due", membershipHandler.Due)
	authed.POST("/memberships/:id/cancel", membershipHandler.Cancel)

	// Payments and Wallet Routes
	authed.GET("/payments/transactions", paymentHandler.ListTransactions)
	authed.POST("/payments/transactions/intent", paymentHandler.CreateIntent)
	authed.GET("/payments/transactions/:id", paymentHandler.GetTransaction)
	authed.GET("/payments/history", paymentHandler.History)
	authed.GET("/wallet", paymentHandler.Wallet)
	authed.POST("/wallet/topup", paymentHandler.TopUp)
	authed.POST("/wallet/topup-bonus", paymentHandler.TopUpWithBonus)
	authed.POST("/wallet/spend", paymentHandler.Spend)
	authed.GET("/wallet/history", paymentHandler.WalletHistory)
	authed.GET("/wallet/bonus-tiers", paymentHandler.ListBonusTiers)

	// Notifications Routes
	authed.GET("/notifications", notificationHandler.List)
	authed.GET("/notifications/unread-count", notificationHandler.UnreadCount)
	authed.POST("/notifications/read-all", notificationHandler.MarkAllRead)
	authed.POST("/notifications/:id/read", notificationHandler.MarkRead)
	authed.DELETE("/notifications/:id", notificationHandler.Delete)

	// Chat Routes
	authed.GET("/chat/threads", chatHandler.ListThreads)
	authed.POST("/chat/threads", chatHandler.CreateThread)
	authed.GET("/chat/threads/:id", chatHandler.GetThread)
	authed.POST("/chat/threads/:id/participants", chatHandler.AddParticipant)
	authed.DELETE("/chat/threads/:id/participants/:userId", chatHandler.RemoveParticipant)
	authed.GET("/chat/threads/:id/messages", chatHandler.ListMessages)
	authed.POST("/chat/threads/:id/messages", chatHandler.PostMessage)
	authed.POST("/chat/messages/:id/read", chatHandler.MarkRead)
	authed.GET("/chat/unread-count", chatHandler.UnreadCount)

	// Admin Routes
	admin := authed.Group("/admin", RequireStaff())
	admin.POST("/users/:id/actions", adminHandler.ApplyAccountAction)
	admin.GET("/users/:id/activity", adminHandler.Activity)
	admin.GET("/policy", adminHandler.GetPolicy)
	admin.PUT("/policy", adminHandler.UpdatePolicy)
	admin.GET("/lockout-policy", adminHandler.GetLockoutPolicy)
	admin.PUT("/lockout-policy", adminHandler.UpdateLockoutPolicy)
	admin.PUT("/auth-policies", adminHandler.UpsertAuthPolicy)
	admin.POST("/payments/refund-group", paymentHandler.RefundGroup)
	admin.POST("/bonus-tiers", paymentHandler.AddBonusTier)
	admin.POST("/plans", membershipHandler.CreatePlan)
	admin.PUT("/plans/:id", membershipHandler.UpdatePlan)
	admin.POST("/scrimmage-categories", scrimmageHandler.CreateCategory)
	admin.POST("/scrimmage-types", scrimmageHandler.CreateType)
}
