package catalog

// entries is the closed catalog, in serialization order: argent perks,
// praetor perks, equipment, weapons, weapon mods, ammo, runes.
var entries = []Entry{
	// Argent Cell capacity perks. Ammo capacity is the only perk the game
	// applies after the loadout itself.
	{ID: "healthCapacity", Kind: KindArgentPerk, Name: "Health Capacity",
		Path: "perk/zion/player/sp/enviroment_suit/health_capacity"},
	{ID: "armorCapacity", Kind: KindArgentPerk, Name: "Armor Capacity",
		Path: "perk/zion/player/sp/enviroment_suit/armor_capacity"},
	{ID: "ammoCapacity", Kind: KindArgentPerk, Name: "Ammo Capacity",
		Path: "perk/zion/player/sp/enviroment_suit/ammo_capacity", ApplyAfterLoadout: true},

	// Praetor suit perks
	{ID: "hazardProtection", Kind: KindPraetorPerk, Name: "Hazard Protection",
		Category: "Environmental Resistance",
		Path:     "perk/zion/player/sp/enviroment_suit/modify_enviromental_damage_1",
		Description: "Damage taken from explosive barrels and environmental sources is reduced."},
	{ID: "selfPreservation", Kind: KindPraetorPerk, Name: "Self Preservation",
		Category: "Environmental Resistance",
		Path:     "perk/zion/player/sp/enviroment_suit/modify_enviromental_damage_2",
		Description: "Self-inflicted damage from weapons is reduced."},
	{ID: "barrelsOFun", Kind: KindPraetorPerk, Name: "Barrels O' Fun",
		Category: "Environmental Resistance",
		Path:     "perk/zion/player/sp/enviroment_suit/modify_enviromental_damage_3",
		Description: "Immunity to damage from explosive barrels."},
	{ID: "itemAwareness", Kind: KindPraetorPerk, Name: "Item Awareness",
		Category:   "Area-Scanning Technology",
		Path:       "perk/zion/player/sp/enviroment_suit/automap_1",
		Unlockable: "researchprojects/find_collectibles_1",
		Description: "The automap reveals exploration items in a wider radius."},
	{ID: "secretSense", Kind: KindPraetorPerk, Name: "Secret Sense",
		Category: "Area-Scanning Technology",
		Path:     "perk/zion/player/sp/enviroment_suit/automap_2",
		Description: "The automap compass pulses when nearby a secret."},
	{ID: "fullView", Kind: KindPraetorPerk, Name: "Full View",
		Category: "Area-Scanning Technology",
		Path:     "perk/zion/player/sp/enviroment_suit/automap_3",
		Description: "Exploration items are automatically displayed."},
	{ID: "quickCharge", Kind: KindPraetorPerk, Name: "Quick Charge",
		Category:   "Equipment System",
		Path:       "perk/zion/player/sp/enviroment_suit/equipment_1",
		Unlockable: "researchprojects/equipment_1",
		Description: "Equipment recharge duration is reduced."},
	{ID: "stockUp", Kind: KindPraetorPerk, Name: "Stock Up",
		Category: "Equipment System",
		Path:     "perk/zion/player/sp/enviroment_suit/equipment_2",
		Description: "The total number of equipment charges is increased."},
	{ID: "rapidCharge", Kind: KindPraetorPerk, Name: "Rapid Charge",
		Category: "Equipment System",
		Path:     "perk/zion/player/sp/enviroment_suit/equipment_3",
		Description: "Recharge duration is further reduced."},
	{ID: "powerSurge", Kind: KindPraetorPerk, Name: "Power Surge",
		Category: "Powerup Effectiveness",
		Path:     "perk/zion/player/sp/enviroment_suit/powerup_shockwave",
		Description: "A blast wave is unleashed when a power-up expires."},
	{ID: "healingPower", Kind: KindPraetorPerk, Name: "Healing Power",
		Category: "Powerup Effectiveness",
		Path:     "perk/zion/player/sp/enviroment_suit/powerup_health",
		Description: "Health is restored to maximum when a power-up is activated."},
	{ID: "powerExtender", Kind: KindPraetorPerk, Name: "Power Extender",
		Category: "Powerup Effectiveness",
		Path:     "perk/zion/player/sp/enviroment_suit/modify_powerup_duration",
		Description: "Power-up durations are increased."},
	{ID: "adept", Kind: KindPraetorPerk, Name: "Adept",
		Category: "Dexterity",
		Path:     "perk/zion/player/sp/enviroment_suit/dexterity_increase_1",
		Description: "Weapon changing time is reduced."},
	{ID: "quickHands", Kind: KindPraetorPerk, Name: "Quick Hands",
		Category: "Dexterity",
		Path:     "perk/zion/player/sp/enviroment_suit/dexterity_increase_2",
		Description: "Ledge grabbing speed is increased."},
	{ID: "hotSwap", Kind: KindPraetorPerk, Name: "Hot Swap",
		Category: "Dexterity",
		Path:     "perk/zion/player/sp/enviroment_suit/dexterity_increase_3",
		Description: "Weapon modification swap time is reduced."},

	// Equipment
	{ID: "doubleJumpThrustBoots", Kind: KindEquipment, Name: "Delta V Jump-Boots",
		Path: "jumpboots/base", DefaultEquip: true},
	{ID: "fragGrenade", Kind: KindEquipment, Name: "Frag Grenade",
		Path: "throwable/zion/player/sp/frag_grenade", DefaultEquip: true},
	{ID: "siphonGrenade", Kind: KindEquipment, Name: "Siphon Grenade",
		Path: "throwable/zion/player/sp/siphon_grenade"},
	{ID: "decoyHologram", Kind: KindEquipment, Name: "Decoy Hologram",
		Path: "decoyhologram/equipment"},

	// Weapons. Fists and pistol are part of every loadout.
	{ID: "fists", Kind: KindWeapon, Name: "Fists",
		Path: "weapon/zion/player/sp/fists", AlwaysIncluded: true},
	{ID: "chainsaw", Kind: KindWeapon, Name: "Chainsaw",
		Path: "weapon/zion/player/sp/chainsaw", AmmoID: "fuel"},
	{ID: "pistol", Kind: KindWeapon, Name: "Pistol",
		Path: "weapon/zion/player/sp/pistol", DefaultEquip: true, AlwaysIncluded: true},
	{ID: "combatShotgun", Kind: KindWeapon, Name: "Combat Shotgun",
		Path: "weapon/zion/player/sp/shotgun", AmmoID: "shells"},
	{ID: "heavyAssaultRifle", Kind: KindWeapon, Name: "Heavy Assault Rifle",
		Path: "weapon/zion/player/sp/heavy_rifle_heavy_ar", AmmoID: "bullets", EquipReserve: true},
	{ID: "plasmaRifle", Kind: KindWeapon, Name: "Plasma Rifle",
		Path: "weapon/zion/player/sp/plasma_rifle", AmmoID: "cells"},
	{ID: "rocketLauncher", Kind: KindWeapon, Name: "Rocket Launcher",
		Path: "weapon/zion/player/sp/rocket_launcher", AmmoID: "rockets"},
	{ID: "superShotgun", Kind: KindWeapon, Name: "Super Shotgun",
		Path: "weapon/zion/player/sp/double_barrel", AmmoID: "shells"},
	{ID: "gaussCannon", Kind: KindWeapon, Name: "Gauss Cannon",
		Path: "weapon/zion/player/sp/gauss_rifle"},
	{ID: "chaingun", Kind: KindWeapon, Name: "Chaingun",
		Path: "weapon/zion/player/sp/chaingun", AmmoID: "bullets"},
	{ID: "bfg9000", Kind: KindWeapon, Name: "BFG-9000",
		Path: "weapon/zion/player/sp/bfg", AmmoID: "bfg"},

	// Weapon mods and upgrades. Pistol and super shotgun upgrades have no
	// base mod; everything else hangs off one.

	// Pistol
	{ID: "chargeEfficiency", Kind: KindWeaponMod, Name: "Charge Efficiency", WeaponID: "pistol",
		Path: "perk/zion/player/sp/weapons/pistol/secondary_charge_shot_faster_charge",
		Description: "Decreases charge time for a charged shot."},
	{ID: "quickRecovery", Kind: KindWeaponMod, Name: "Quick Recovery", WeaponID: "pistol",
		Path: "perk/zion/player/sp/weapons/pistol/secondary_charge_shot_faster_discharge",
		Description: "Decreases the cool-down time required after a charged shot."},
	{ID: "lightWeight", Kind: KindWeaponMod, Name: "Light Weight", WeaponID: "pistol",
		Path: "perk/zion/player/sp/weapons/pistol/secondary_charge_shot_no_movement_penalty",
		Description: "Enables faster movement while charging."},
	{ID: "increasedPowerMastery", Kind: KindWeaponMod, Name: "MASTERY: Increased Power", WeaponID: "pistol",
		Path: "perk/zion/player/sp/weapons/pistol/secondary_charge_shot_higher_damage",
		Description: "Charged shots do more damage."},

	// Combat shotgun: charged burst
	{ID: "chargedBurst", Kind: KindWeaponMod, Name: "Charged Burst", WeaponID: "combatShotgun", IsBaseMod: true,
		Path: "perk/zion/player/sp/weapons/shotgun/secondary_charge_burst"},
	{ID: "chargedBurst_speedyRecovery", Kind: KindWeaponMod, Name: "Speedy Recovery",
		WeaponID: "combatShotgun", ModID: "chargedBurst",
		Path:     "perk/zion/player/sp/weapons/shotgun/secondary_charge_burst_faster_recharge",
		Description: "Decreases recharge time of the mod."},
	{ID: "chargedBurst_rapidFire", Kind: KindWeaponMod, Name: "Rapid Fire",
		WeaponID: "combatShotgun", ModID: "chargedBurst",
		Path:     "perk/zion/player/sp/weapons/shotgun/secondary_charge_burst_faster_fire_rate",
		Description: "Increases rate of fire of the mod."},
	{ID: "chargedBurst_quickLoad", Kind: KindWeaponMod, Name: "Quick Load",
		WeaponID: "combatShotgun", ModID: "chargedBurst",
		Path:     "perk/zion/player/sp/weapons/shotgun/secondary_charge_burst_faster_charge",
		Description: "Decreases loading time of the mod."},
	{ID: "chargedBurst_powerShot_mastery", Kind: KindWeaponMod, Name: "MASTERY: Power Shot",
		WeaponID: "combatShotgun", ModID: "chargedBurst",
		Path:     "perk/zion/player/sp/weapons/shotgun/secondary_charge_burst_mastery"},

	// Combat shotgun: explosive shot
	{ID: "explosiveShot", Kind: KindWeaponMod, Name: "Explosive Shot", WeaponID: "combatShotgun", IsBaseMod: true,
		Path: "perk/zion/player/sp/weapons/shotgun/pop_rocket"},
	{ID: "explosiveShot_speedyRecovery", Kind: KindWeaponMod, Name: "Speedy Recovery",
		WeaponID: "combatShotgun", ModID: "explosiveShot",
		Path:     "perk/zion/player/sp/weapons/shotgun/pop_rocket_faster_recharge",
		Description: "Decreases recharge time of the mod."},
	{ID: "explosiveShot_biggerBoom", Kind: KindWeaponMod, Name: "Bigger Boom",
		WeaponID: "combatShotgun", ModID: "explosiveShot",
		Path:     "perk/zion/player/sp/weapons/shotgun/pop_rocket_larger_explosion",
		Description: "Increases the area of effect."},
	{ID: "explosiveShot_instantLoad", Kind: KindWeaponMod, Name: "Instant Load",
		WeaponID: "combatShotgun", ModID: "explosiveShot",
		Path:     "perk/zion/player/sp/weapons/shotgun/pop_rocket_faster_charge",
		Description: "Removes loading time of the mod."},
	{ID: "explosiveShot_clusterStrike_mastery", Kind: KindWeaponMod, Name: "MASTERY: Cluster Strike",
		WeaponID: "combatShotgun", ModID: "explosiveShot",
		Path:     "perk/zion/player/sp/weapons/shotgun/pop_rocket_mastery",
		Description: "Cluster bombs will spawn upon a direct impact on a demon providing further damage."},

	// Super shotgun
	{ID: "fasterReload", Kind: KindWeaponMod, Name: "Faster Reload", WeaponID: "superShotgun",
		Path: "perk/zion/player/sp/weapons/double_barrel/default_faster_reload",
		Description: "Decrease time to reload."},
	{ID: "uraniumCoating", Kind: KindWeaponMod, Name: "Uranium Coating", WeaponID: "superShotgun",
		Path: "perk/zion/player/sp/weapons/double_barrel/default_bullet_penetration",
		Description: "Shots penetrate through targets."},
	{ID: "doubleTrouble_mastery", Kind: KindWeaponMod, Name: "MASTERY: Double Trouble", WeaponID: "superShotgun",
		Path: "perk/zion/player/sp/weapons/double_barrel/mastery",
		Description: "Fire twice before having to reload."},

	// Heavy assault rifle: tactical scope
	{ID: "tacticalScope", Kind: KindWeaponMod, Name: "Tactical Scope", WeaponID: "heavyAssaultRifle", IsBaseMod: true,
		Path: "perk/zion/player/sp/weapons/heavy_rifle_heavy_ar/zoom"},
	{ID: "tacticalScope_uraniumCoating", Kind: KindWeaponMod, Name: "Uranium Coating",
		WeaponID: "heavyAssaultRifle", ModID: "tacticalScope",
		Path:     "perk/zion/player/sp/weapons/heavy_rifle_heavy_ar/zoom_bullet_penetration",
		Description: "Shots fired with the tactical scope's zoom feature will pierce enemies."},
	{ID: "tacticalScope_skullCracker", Kind: KindWeaponMod, Name: "Skull Cracker",
		WeaponID: "heavyAssaultRifle", ModID: "tacticalScope",
		Path:     "perk/zion/player/sp/weapons/heavy_rifle_heavy_ar/zoom_more_headshot_damage",
		Description: "Headshots attained in scope mode do more damage."},
	{ID: "tacticalScope_lightWeight", Kind: KindWeaponMod, Name: "Light Weight",
		WeaponID: "heavyAssaultRifle", ModID: "tacticalScope",
		Path:     "perk/zion/player/sp/weapons/heavy_rifle_heavy_ar/zoom_no_movement_penalty",
		Description: "Increased movement speed while using the scope."},
	{ID: "tacticalScope_devastatorRounds_mastery", Kind: KindWeaponMod, Name: "MASTERY: Devastator Rounds",
		WeaponID: "heavyAssaultRifle", ModID: "tacticalScope",
		Path:     "perk/zion/player/sp/weapons/heavy_rifle_heavy_ar/zoom_mastery",
		Description: "Fires powerful experimental Devastator rounds while zoomed-in."},

	// Heavy assault rifle: micro missiles
	{ID: "microMissiles", Kind: KindWeaponMod, Name: "Micro Missiles", WeaponID: "heavyAssaultRifle", IsBaseMod: true,
		Path: "perk/zion/player/sp/weapons/heavy_rifle_heavy_ar/burst_detonate"},
	{ID: "microMissiles_ammoEfficient", Kind: KindWeaponMod, Name: "Ammo Efficient",
		WeaponID: "heavyAssaultRifle", ModID: "microMissiles",
		Path:     "perk/zion/player/sp/weapons/heavy_rifle_heavy_ar/burst_detonate_lower_ammo_cost",
		Description: "Decreased ammo usage."},
	{ID: "microMissiles_advancedLoader", Kind: KindWeaponMod, Name: "Advanced Loader",
		WeaponID: "heavyAssaultRifle", ModID: "microMissiles",
		Path:     "perk/zion/player/sp/weapons/heavy_rifle_heavy_ar/burst_detonate_faster_recharge",
		Description: "Improved reload time."},
	{ID: "microMissiles_quickLauncher", Kind: KindWeaponMod, Name: "Quick Launcher",
		WeaponID: "heavyAssaultRifle", ModID: "microMissiles",
		Path:     "perk/zion/player/sp/weapons/heavy_rifle_heavy_ar/burst_detonate_faster_charge_time",
		Description: "The micro missile mod can be activated instantaneously."},
	{ID: "microMissiles_bottomlessMissiles_mastery", Kind: KindWeaponMod, Name: "MASTERY: Bottomless Missiles",
		WeaponID: "heavyAssaultRifle", ModID: "microMissiles",
		Path:     "perk/zion/player/sp/weapons/heavy_rifle_heavy_ar/burst_detonate_mastery",
		Description: "Missiles can be continuously fired without a reload."},

	// Plasma rifle: heat blast
	{ID: "heatBlast", Kind: KindWeaponMod, Name: "Heat Blast", WeaponID: "plasmaRifle", IsBaseMod: true,
		Path: "perk/zion/player/sp/weapons/plasma_rifle/secondary_aoe"},
	{ID: "heatBlast_superHeatedRounds", Kind: KindWeaponMod, Name: "Super Heated Rounds",
		WeaponID: "plasmaRifle", ModID: "heatBlast",
		Path:     "perk/zion/player/sp/weapons/plasma_rifle/secondary_aoe_faster_charge",
		Description: "Shots build heat faster."},
	{ID: "heatBlast_improvedVenting", Kind: KindWeaponMod, Name: "Improved Venting",
		WeaponID: "plasmaRifle", ModID: "heatBlast",
		Path:     "perk/zion/player/sp/weapons/plasma_rifle/secondary_aoe_faster_recovery",
		Description: "Decreases recovery time between heat blast shots."},
	{ID: "heatBlast_expandedThreshold", Kind: KindWeaponMod, Name: "Expanded Threshold",
		WeaponID: "plasmaRifle", ModID: "heatBlast",
		Path:     "perk/zion/player/sp/weapons/plasma_rifle/secondary_aoe_more_damage",
		Description: "The heat meter maximum is increased, allowing a higher range of damage."},
	{ID: "heatBlast_heatedCore_mastery", Kind: KindWeaponMod, Name: "MASTERY: Heated Core",
		WeaponID: "plasmaRifle", ModID: "heatBlast",
		Path:     "perk/zion/player/sp/weapons/plasma_rifle/secondary_aoe_mastery"},

	// Plasma rifle: stun bomb
	{ID: "stunBomb", Kind: KindWeaponMod, Name: "Stun Bomb", WeaponID: "plasmaRifle", IsBaseMod: true,
		Path: "perk/zion/player/sp/weapons/plasma_rifle/secondary_stun"},
	{ID: "stunBomb_quickRecharge", Kind: KindWeaponMod, Name: "Quick Recharge",
		WeaponID: "plasmaRifle", ModID: "stunBomb",
		Path:     "perk/zion/player/sp/weapons/plasma_rifle/secondary_stun_faster_recharge",
		Description: "Decreases cool-down time between stun bombs."},
	{ID: "stunBomb_bigShock", Kind: KindWeaponMod, Name: "Big Shock",
		WeaponID: "plasmaRifle", ModID: "stunBomb",
		Path:     "perk/zion/player/sp/weapons/plasma_rifle/secondary_stun_larger_radius",
		Description: "Stun bombs have an increased area of effect."},
	{ID: "stunBomb_largerStun", Kind: KindWeaponMod, Name: "Larger Stun",
		WeaponID: "plasmaRifle", ModID: "stunBomb",
		Path:     "perk/zion/player/sp/weapons/plasma_rifle/secondary_stun_longer_stun",
		Description: "The stagger induced by a stun bomb detonation lasts longer."},
	{ID: "stunBomb_chainStun_mastery", Kind: KindWeaponMod, Name: "MASTERY: Chain Stun",
		WeaponID: "plasmaRifle", ModID: "stunBomb",
		Path:     "perk/zion/player/sp/weapons/plasma_rifle/secondary_stun_mastery",
		Description: "Enemies killed while in the staggered state will explode with secondary stun bombs."},

	// Rocket launcher: lock-on burst
	{ID: "lockOnBurst", Kind: KindWeaponMod, Name: "Lock-On Burst", WeaponID: "rocketLauncher", IsBaseMod: true,
		Path: "perk/zion/player/sp/weapons/rocket_launcher/lock_on"},
	{ID: "lockOnBurst_quickLock", Kind: KindWeaponMod, Name: "Quick Lock",
		WeaponID: "rocketLauncher", ModID: "lockOnBurst",
		Path:     "perk/zion/player/sp/weapons/rocket_launcher/lockon_decrease_lock_time",
		Description: "The time taken to acquire a lock-on is reduced."},
	{ID: "lockOnBurst_fasterRecovery", Kind: KindWeaponMod, Name: "Faster Recovery",
		WeaponID: "rocketLauncher", ModID: "lockOnBurst",
		Path:     "perk/zion/player/sp/weapons/rocket_launcher/lockon_faster_recovery",
		Description: "Recovery time is reduced, allowing a new lock-on to be acquired faster."},
	{ID: "lockOnBurst_multiTargeting_mastery", Kind: KindWeaponMod, Name: "MASTERY: Multi-Targeting",
		WeaponID: "rocketLauncher", ModID: "lockOnBurst",
		Path:     "perk/zion/player/sp/weapons/rocket_launcher/lockon_mastery",
		Description: "Up to three targets can be locked onto simultaneously."},

	// Rocket launcher: remote detonation
	{ID: "remoteDetonation", Kind: KindWeaponMod, Name: "Remote Detonation", WeaponID: "rocketLauncher", IsBaseMod: true,
		Path: "perk/zion/player/sp/weapons/rocket_launcher/detonate"},
	{ID: "remoteDetonation_improvedWarhead", Kind: KindWeaponMod, Name: "Improved Warhead",
		WeaponID: "rocketLauncher", ModID: "remoteDetonation",
		Path:     "perk/zion/player/sp/weapons/rocket_launcher/detonate_larger_damage_radius",
		Description: "The area-of-effect damage of remote detonated missiles is increased."},
	{ID: "remoteDetonation_jaggedShrapnel", Kind: KindWeaponMod, Name: "Jagged Shrapnel",
		WeaponID: "rocketLauncher", ModID: "remoteDetonation",
		Path:     "perk/zion/player/sp/weapons/rocket_launcher/detonate_dot_undead",
		Description: "Remote detonated missiles explode with shrapnel which causes bleed damage."},
	{ID: "remoteDetonation_externalPayload_mastery", Kind: KindWeaponMod, Name: "MASTERY: External Payload",
		WeaponID: "rocketLauncher", ModID: "remoteDetonation",
		Path:     "perk/zion/player/sp/weapons/rocket_launcher/detonate_mastery",
		Description: "Remote detonation of a missile will not cause the missile to be destroyed."},

	// Gauss cannon: precision bolt
	{ID: "precisionBolt", Kind: KindWeaponMod, Name: "Precision Bolt", WeaponID: "gaussCannon", IsBaseMod: true,
		Path: "perk/zion/player/sp/weapons/gauss_cannon/charged_sniper"},
	{ID: "precisionBolt_energyEfficient", Kind: KindWeaponMod, Name: "Energy Efficient",
		WeaponID: "gaussCannon", ModID: "precisionBolt",
		Path:     "perk/zion/player/sp/weapons/gauss_cannon/charged_sniper_reduced_max_charge",
		Description: "Decreases recharge time."},
	{ID: "precisionBolt_lightWeight", Kind: KindWeaponMod, Name: "Light Weight",
		WeaponID: "gaussCannon", ModID: "precisionBolt",
		Path:     "perk/zion/player/sp/weapons/gauss_cannon/charged_sniper_no_movement_penalty",
		Description: "Increased movement speed while zoomed in."},
	{ID: "precisionBolt_volatileDischarge_mastery", Kind: KindWeaponMod, Name: "MASTERY: Volatile Discharge",
		WeaponID: "gaussCannon", ModID: "precisionBolt",
		Path:     "perk/zion/player/sp/weapons/gauss_cannon/charged_sniper_mastery",
		Description: "Enemies killed with the precision bolt will explode."},

	// Gauss cannon: siege mode
	{ID: "siegeMode", Kind: KindWeaponMod, Name: "Siege Mode", WeaponID: "gaussCannon", IsBaseMod: true,
		Path: "perk/zion/player/sp/weapons/gauss_cannon/siege_mode"},
	{ID: "siegeMode_outerBeam", Kind: KindWeaponMod, Name: "Outer Beam",
		WeaponID: "gaussCannon", ModID: "siegeMode",
		Path:     "perk/zion/player/sp/weapons/gauss_cannon/siege_mode_outer_beam",
		Description: "Increases the area-of-effect damage for siege mode shots."},
	{ID: "siegeMode_reducedCharge", Kind: KindWeaponMod, Name: "Reduced Charge",
		WeaponID: "gaussCannon", ModID: "siegeMode",
		Path:     "perk/zion/player/sp/weapons/gauss_cannon/siege_mode_reduced_charge_time",
		Description: "Decreases charging time."},
	{ID: "siegeMode_mobileSiege_mastery", Kind: KindWeaponMod, Name: "MASTERY: Mobile Siege",
		WeaponID: "gaussCannon", ModID: "siegeMode",
		Path:     "perk/zion/player/sp/weapons/gauss_cannon/siege_mode_mastery",
		Description: "Enables movement while charging."},

	// Chaingun: gatling rotator
	{ID: "gatlingRotator", Kind: KindWeaponMod, Name: "Gatling Rotator", WeaponID: "chaingun", IsBaseMod: true,
		Path: "perk/zion/player/sp/weapons/chaingun/gatling"},
	{ID: "gatlingRotator_improvedTorque", Kind: KindWeaponMod, Name: "Improved Torque",
		WeaponID: "chaingun", ModID: "gatlingRotator",
		Path:     "perk/zion/player/sp/weapons/chaingun/gatling_faster_spinup",
		Description: "Decreases spin-up time."},
	{ID: "gatlingRotator_uraniumCoating", Kind: KindWeaponMod, Name: "Uranium Coating",
		WeaponID: "chaingun", ModID: "gatlingRotator",
		Path:     "perk/zion/player/sp/weapons/chaingun/gatling_penetration",
		Description: "Shots penetrate enemies."},
	{ID: "gatlingRotator_incendiaryRounds_mastery", Kind: KindWeaponMod, Name: "MASTERY: Incendiary Rounds",
		WeaponID: "chaingun", ModID: "gatlingRotator",
		Path:     "perk/zion/player/sp/weapons/chaingun/gatling_mastery",
		Description: "Bullets will do more damage once maximum firing rate is reached."},

	// Chaingun: mobile turret
	{ID: "mobileTurret", Kind: KindWeaponMod, Name: "Mobile Turret", WeaponID: "chaingun", IsBaseMod: true,
		Path: "perk/zion/player/sp/weapons/chaingun/turret"},
	{ID: "mobileTurret_rapidDeployment", Kind: KindWeaponMod, Name: "Rapid Deployment",
		WeaponID: "chaingun", ModID: "mobileTurret",
		Path:     "perk/zion/player/sp/weapons/chaingun/turret_faster_equip",
		Description: "Decreases transformation time of turret."},
	{ID: "mobileTurret_uraniumCoating", Kind: KindWeaponMod, Name: "Uranium Coating",
		WeaponID: "chaingun", ModID: "mobileTurret",
		Path:     "perk/zion/player/sp/weapons/chaingun/turret_penetration",
		Description: "Shots penetrate enemies."},
	{ID: "mobileTurret_ultimateCooling_mastery", Kind: KindWeaponMod, Name: "MASTERY: Ultimate Cooling",
		WeaponID: "chaingun", ModID: "mobileTurret",
		Path:     "perk/zion/player/sp/weapons/chaingun/turret_mastery",
		Description: "The weapon can no longer overheat."},

	// Ammo pools
	{ID: "fuel", Kind: KindAmmo, Name: "Fuel", Path: "ammo/zion/sharedammopool/fuel", FullCount: 99},
	{ID: "shells", Kind: KindAmmo, Name: "Shells", Path: "ammo/zion/sharedammopool/shells", FullCount: 99},
	{ID: "bullets", Kind: KindAmmo, Name: "Bullets", Path: "ammo/zion/sharedammopool/bullets", FullCount: 999},
	{ID: "cells", Kind: KindAmmo, Name: "Cells", Path: "ammo/zion/sharedammopool/cells", FullCount: 999},
	{ID: "rockets", Kind: KindAmmo, Name: "Rockets", Path: "ammo/zion/sharedammopool/rockets", FullCount: 99},
	{ID: "bfg", Kind: KindAmmo, Name: "BFG Charges", Path: "ammo/zion/sharedammopool/bfg", FullCount: 99},

	// Runes
	{ID: "vacuum", Kind: KindRune, Name: "Vacuum",
		Path:               "perk/zion/player/sp/enviroment_suit/increase_drop_radius",
		Description:        "Increases the range for absorbing dropped items.",
		UpgradeDescription: "Further increases the range for absorbing dropped items."},
	{ID: "dazedAndConfused", Kind: KindRune, Name: "Dazed and Confused",
		Path:               "perk/zion/player/sp/enviroment_suit/modify_enemy_stagger_duration",
		Description:        "Increases how long demons remain in a stagger state.",
		UpgradeDescription: "Demon staggers last even longer."},
	{ID: "ammoBoost", Kind: KindRune, Name: "Ammo Boost",
		Path:               "perk/zion/player/sp/enviroment_suit/modify_ammo_drops",
		Description:        "Increases the value of ammo received from demons and items.",
		UpgradeDescription: "BFG ammo has a chance to drop from demons."},
	{ID: "equipmentPower", Kind: KindRune, Name: "Equipment Power",
		Path:               "perk/zion/player/sp/enviroment_suit/activate_equipment_effectiveness",
		Description:        "Increases the effectiveness of Equipment items.",
		UpgradeDescription: "Further increases the effectiveness of Equipment items."},
	{ID: "seekAndDestroy", Kind: KindRune, Name: "Seek and Destroy",
		Path:               "perk/zion/player/sp/enviroment_suit/glory_kill_dash",
		Description:        "Launch into a glory kill from much further away.",
		UpgradeDescription: "Increases the distance Seek and Destroy can be initiated."},
	{ID: "savagery", Kind: KindRune, Name: "Savagery",
		Path:               "perk/zion/player/sp/enviroment_suit/glory_kill_speed",
		Description:        "Perform glory kills faster.",
		UpgradeDescription: "Further increases speed of glory kills."},
	{ID: "inFlightMobility", Kind: KindRune, Name: "In-Flight Mobility",
		Path:               "perk/zion/player/sp/enviroment_suit/double_jump_air_control",
		Description:        "Provides a significant increase in control over in-air movement after a double-jump.",
		UpgradeDescription: "Applies air-control to a single jump."},
	{ID: "armoredOffensive", Kind: KindRune, Name: "Armored Offensive",
		Path:               "perk/zion/player/sp/enviroment_suit/glory_kills_award_armor",
		Description:        "Glory killing demons drop armor.",
		UpgradeDescription: "More armor drops per glory kill."},
	{ID: "bloodFueled", Kind: KindRune, Name: "Blood Fueled",
		Path:               "perk/zion/player/sp/enviroment_suit/speed_boost_on_glory_kill",
		Description:        "Move faster for a short time after performing a glory kill.",
		UpgradeDescription: "Extends how long you can move faster after performing a glory kill."},
	{ID: "intimacyIsBest", Kind: KindRune, Name: "Intimacy is Best",
		Path:               "perk/zion/player/sp/enviroment_suit/modify_enemy_stagger_toughness",
		Description:        "Demons become more glory kill friendly due to a high damage resistance when staggered.",
		UpgradeDescription: "Demons stagger off less damage."},
	{ID: "richGetRicher", Kind: KindRune, Name: "Rich Get Richer",
		Path:               "perk/zion/player/sp/enviroment_suit/infinite_ammo_on_health_value",
		Description:        "Firing your standard weapons will not cost ammo when you have 100 Armor or more.",
		UpgradeDescription: "Activate Rich Get Richer at 75 armor."},
	{ID: "savingThrow", Kind: KindRune, Name: "Saving Throw",
		Path:               "perk/zion/player/sp/enviroment_suit/activate_focus_on_death_blow",
		Description:        "Get one chance to survive a death blow and recover health. This resets on death.",
		UpgradeDescription: "Get an additional Saving Throw per life."},
}
