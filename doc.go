// Package roleauth provides role, permission and role-link management that a
// host web application mounts into its own router.
//
// The package keeps four tables: roles, permissions ("auths"), role-user links
// and role-permission links. Links store the ids and display names they were
// written with; renaming a role or permission does not update existing links,
// and deleting one does not cascade.
//
// roleauth never opens a database connection. The host supplies a
// SessionProvider that hands out one dbkit handle per operation, and every
// handle is released before the operation returns.
//
// # Basic Usage
//
//	db, err := dbkit.New(dbkit.Config{URL: os.Getenv("DATABASE_URL")})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// 1. Create the tables
//	if _, err := db.Migrate(ctx, roleauth.Migrations()); err != nil {
//	    log.Fatal(err)
//	}
//
//	// 2. Create the service
//	service := roleauth.NewService(roleauth.StaticSession(db),
//	    roleauth.WithMetrics(prometheus.DefaultRegisterer),
//	)
//
//	// 3. Use it directly
//	role, err := service.CreateRole(ctx, roleauth.RoleInput{Name: "editor", Nickname: "Editor"})
//	page, err := service.ListRoles(ctx, roleauth.NewRoleFilter().WithName("edit"))
//
// # HTTP Usage
//
//	h := roleauth.NewHandler(roleauth.ServiceManagers(service))
//
//	r := chi.NewRouter()
//	r.Use(roleauth.RequestContext())
//	r.Route(roleauth.DefaultPrefix, h.MountRoutes)
//
// Routes (relative to the prefix, trailing slash included):
//
//	POST   /                  create role
//	GET    /                  list roles (page, size, name, nickname)
//	GET    /{id}/             get role
//	POST   /auth/             create permission
//	GET    /auth/             list permissions (page, size, name, nickname)
//	GET    /auth/{id}/        get permission
//	PUT    /auth/{id}/        update permission
//	DELETE /auth/{id}/        delete permission
//	...    /role_user/        role-user links, same shape as /auth/
//	...    /role_auth/        role-permission links, same shape as /auth/
//
// Failures are answered with {"detail": "..."}: 404 for a missing record and
// 400 for invalid input, a taken name or a rolled-back write.
//
// # Error Handling
//
//	_, err := service.CreatePermission(ctx, roleauth.PermissionInput{Name: "editor"})
//	switch {
//	case roleauth.IsValidation(err):
//	case roleauth.IsConflict(err):
//	case roleauth.IsPersistence(err):
//	}
package roleauth
