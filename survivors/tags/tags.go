package tags

import "github.com/yohamta/donburi"

var (
	Player       = donburi.NewTag().SetName("Player")
	Enemy        = donburi.NewTag().SetName("Enemy")
	Gem          = donburi.NewTag().SetName("Gem")
	Potion       = donburi.NewTag().SetName("Potion")
	PlayerBullet = donburi.NewTag().SetName("PlayerBullet")
	EnemyBullet  = donburi.NewTag().SetName("EnemyBullet")
	Mine         = donburi.NewTag().SetName("Mine")
	Seeker       = donburi.NewTag().SetName("Seeker")
	Boomerang    = donburi.NewTag().SetName("Boomerang")
	Cloud        = donburi.NewTag().SetName("Cloud")
	Zone         = donburi.NewTag().SetName("Zone")
)
