// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import "slices"

// HasPermission reports whether the caller holds the named permission.
//
// Anonymous callers hold nothing. Admins hold everything. Everyone else holds
// exactly the codenames listed in their token.
func HasPermission(claims *AuthClaims, permission string) bool {
	if claims == nil {
		return false
	}
	if UserRole(claims.Role).AtLeast(RoleAdmin) {
		return true
	}
	return slices.Contains(claims.Permissions, permission)
}
