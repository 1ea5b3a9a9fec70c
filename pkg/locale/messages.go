package locale

var messages = catalog{
	"Invalid token": {
		JA: "無効なトークンです",
		VI: "Token không hợp lệ",
	},
	"Token has expired": {
		JA: "トークンの有効期限が切れています",
		VI: "Token đã hết hạn",
	},
	"Invalid master token": {
		JA: "無効なマスタートークンです",
		VI: "Master token không hợp lệ",
	},
	"Not authenticated": {
		JA: "認証されていません",
		VI: "Chưa xác thực",
	},
	"Validation error": {
		JA: "入力値が不正です",
		VI: "Dữ liệu không hợp lệ",
	},
	"Internal server error": {
		JA: "サーバー内部エラー",
		VI: "Lỗi máy chủ nội bộ",
	},
}
