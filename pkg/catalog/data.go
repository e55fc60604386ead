package catalog

// entries is every base-game item in the meta save. Columns are
// alerted, discovered, unlocked.
var entries = []Entry{
	// Jokers available on a fresh profile.
	{"j_joker", on, off, on},
	{"j_greedy_joker", on, off, on},
	{"j_lusty_joker", on, off, on},
	{"j_wrathful_joker", on, off, on},
	{"j_gluttenous_joker", on, off, on},
	{"j_jolly", on, off, on},
	{"j_zany", on, off, on},
	{"j_mad", on, off, on},
	{"j_crazy", on, off, on},
	{"j_droll", on, off, on},
	{"j_sly", on, off, on},
	{"j_wily", on, off, on},
	{"j_clever", on, off, on},
	{"j_devious", on, off, on},
	{"j_crafty", on, off, on},
	{"j_half", on, off, on},
	{"j_stencil", on, off, on},
	{"j_four_fingers", on, off, on},
	{"j_mime", on, off, on},
	{"j_credit_card", on, off, on},
	{"j_ceremonial", on, off, on},
	{"j_banner", on, off, on},
	{"j_mystic_summit", on, off, on},
	{"j_marble", on, off, on},
	{"j_loyalty_card", on, off, on},
	{"j_8_ball", on, off, on},
	{"j_misprint", on, off, on},
	{"j_dusk", on, off, on},
	{"j_raised_fist", on, off, on},
	{"j_chaos", on, off, on},
	{"j_fibonacci", on, off, on},
	{"j_steel_joker", on, off, on},
	{"j_scary_face", on, off, on},
	{"j_abstract", on, off, on},
	{"j_delayed_grat", on, off, on},
	{"j_hack", on, off, on},
	{"j_pareidolia", on, off, on},
	{"j_gros_michel", on, off, on},
	{"j_even_steven", on, off, on},
	{"j_odd_todd", on, off, on},
	{"j_scholar", on, off, on},
	{"j_business", on, off, on},
	{"j_supernova", on, off, on},
	{"j_ride_the_bus", on, off, on},
	{"j_space", on, off, on},
	{"j_egg", on, off, on},
	{"j_burglar", on, off, on},
	{"j_blackboard", on, off, on},
	{"j_runner", on, off, on},
	{"j_ice_cream", on, off, on},
	{"j_dna", on, off, on},
	{"j_splash", on, off, on},
	{"j_blue_joker", on, off, on},
	{"j_sixth_sense", on, off, on},
	{"j_constellation", on, off, on},
	{"j_hiker", on, off, on},
	{"j_faceless", on, off, on},
	{"j_green_joker", on, off, on},
	{"j_superposition", on, off, on},
	{"j_todo_list", on, off, on},
	{"j_cavendish", on, off, on},
	{"j_card_sharp", on, off, on},
	{"j_red_card", on, off, on},
	{"j_madness", on, off, on},
	{"j_square", on, off, on},
	{"j_seance", on, off, on},
	{"j_riff_raff", on, off, on},
	{"j_vampire", on, off, on},
	{"j_shortcut", on, off, on},
	{"j_hologram", on, off, on},
	{"j_vagabond", on, off, on},
	{"j_baron", on, off, on},
	{"j_cloud_9", on, off, on},
	{"j_rocket", on, off, on},
	{"j_obelisk", on, off, on},
	{"j_midas_mask", on, off, on},
	{"j_luchador", on, off, on},
	{"j_photograph", on, off, on},
	{"j_gift", on, off, on},
	{"j_turtle_bean", on, off, on},
	{"j_erosion", on, off, on},
	{"j_reserved_parking", on, off, on},
	{"j_mail", on, off, on},
	{"j_to_the_moon", on, off, on},
	{"j_hallucination", on, off, on},
	{"j_fortune_teller", on, off, on},
	{"j_juggler", on, off, on},
	{"j_drunkard", on, off, on},
	{"j_stone", on, off, on},
	{"j_golden", on, off, on},
	{"j_lucky_cat", on, off, on},
	{"j_baseball", on, off, on},
	{"j_bull", on, off, on},
	{"j_diet_cola", on, off, on},
	{"j_trading", on, off, on},
	{"j_flash", on, off, on},
	{"j_popcorn", on, off, on},
	{"j_trousers", on, off, on},
	{"j_ancient", on, off, on},
	{"j_ramen", on, off, on},
	{"j_walkie_talkie", on, off, on},
	{"j_selzer", on, off, on},
	{"j_castle", on, off, on},
	{"j_smiley", on, off, on},
	{"j_campfire", on, off, on},

	// Jokers behind an unlock condition.
	{"j_ticket", off, off, off},
	{"j_mr_bones", off, off, off},
	{"j_acrobat", off, off, off},
	{"j_sock_and_buskin", off, off, off},
	{"j_swashbuckler", off, off, off},
	{"j_troubadour", off, off, off},
	{"j_certificate", off, off, off},
	{"j_smeared", off, off, off},
	{"j_throwback", off, off, off},
	{"j_hanging_chad", off, off, off},
	{"j_rough_gem", off, off, off},
	{"j_bloodstone", off, off, off},
	{"j_arrowhead", off, off, off},
	{"j_onyx_agate", off, off, off},
	{"j_glass", off, off, off},
	{"j_ring_master", off, off, off},
	{"j_flower_pot", off, off, off},
	{"j_blueprint", off, off, off},
	{"j_wee", off, off, off},
	{"j_merry_andy", off, off, off},
	{"j_oops", off, off, off},
	{"j_idol", off, off, off},
	{"j_seeing_double", off, off, off},
	{"j_matador", off, off, off},
	{"j_hit_the_road", off, off, off},
	{"j_duo", off, off, off},
	{"j_trio", off, off, off},
	{"j_family", off, off, off},
	{"j_order", off, off, off},
	{"j_tribe", off, off, off},
	{"j_stuntman", off, off, off},
	{"j_invisible", off, off, off},
	{"j_brainstorm", off, off, off},
	{"j_satellite", off, off, off},
	{"j_shoot_the_moon", off, off, off},
	{"j_drivers_license", off, off, off},
	{"j_cartomancer", off, off, off},
	{"j_astronomer", off, off, off},
	{"j_burnt", off, off, off},
	{"j_bootstraps", off, off, off},
	{"j_caino", off, off, off},
	{"j_triboulet", off, off, off},
	{"j_yorick", off, off, off},
	{"j_chicot", off, off, off},
	{"j_perkeo", off, off, off},

	// Vouchers, base tier.
	{"v_overstock_norm", on, off, on},
	{"v_clearance_sale", on, off, on},
	{"v_hone", on, off, on},
	{"v_reroll_surplus", on, off, on},
	{"v_crystal_ball", on, off, on},
	{"v_telescope", on, off, on},
	{"v_grabber", on, off, on},
	{"v_wasteful", on, off, on},
	{"v_tarot_merchant", on, off, on},
	{"v_planet_merchant", on, off, on},
	{"v_seed_money", on, off, on},
	{"v_blank", on, off, on},
	{"v_magic_trick", on, off, on},
	{"v_hieroglyph", on, off, on},
	{"v_directors_cut", on, off, on},
	{"v_paint_brush", on, off, on},

	// Vouchers, upgraded tier.
	{"v_overstock_plus", off, off, off},
	{"v_liquidation", off, off, off},
	{"v_glow_up", off, off, off},
	{"v_reroll_glut", off, off, off},
	{"v_omen_globe", off, off, off},
	{"v_observatory", off, off, off},
	{"v_nacho_tong", off, off, off},
	{"v_recyclomancy", off, off, off},
	{"v_tarot_tycoon", off, off, off},
	{"v_planet_tycoon", off, off, off},
	{"v_money_tree", off, off, off},
	{"v_antimatter", off, off, off},
	{"v_illusion", off, off, off},
	{"v_petroglyph", off, off, off},
	{"v_retcon", off, off, off},
	{"v_palette", off, off, off},

	// Decks.
	{"b_red", on, off, on},
	{"b_blue", on, off, on},
	{"b_yellow", on, off, on},
	{"b_green", on, off, on},
	{"b_black", on, off, on},
	{"b_magic", off, off, off},
	{"b_nebula", off, off, off},
	{"b_ghost", off, off, off},
	{"b_abandoned", off, off, off},
	{"b_checkered", off, off, off},
	{"b_zodiac", off, off, off},
	{"b_painted", off, off, off},
	{"b_anaglyph", off, off, off},
	{"b_plasma", off, off, off},
	{"b_erratic", off, off, off},

	// Tarot cards.
	{"c_fool", on, off, na},
	{"c_magician", on, off, na},
	{"c_high_priestess", on, off, na},
	{"c_empress", on, off, na},
	{"c_emperor", on, off, na},
	{"c_heirophant", on, off, na},
	{"c_lovers", on, off, na},
	{"c_chariot", on, off, na},
	{"c_justice", on, off, na},
	{"c_hermit", on, off, na},
	{"c_wheel_of_fortune", on, off, na},
	{"c_strength", on, off, na},
	{"c_hanged_man", on, off, na},
	{"c_death", on, off, na},
	{"c_temperance", on, off, na},
	{"c_devil", on, off, na},
	{"c_tower", on, off, na},
	{"c_star", on, off, na},
	{"c_moon", on, off, na},
	{"c_sun", on, off, na},
	{"c_judgement", on, off, na},
	{"c_world", on, off, na},

	// Planet cards.
	{"c_mercury", on, off, na},
	{"c_venus", on, off, na},
	{"c_earth", on, off, na},
	{"c_mars", on, off, na},
	{"c_jupiter", on, off, na},
	{"c_saturn", on, off, na},
	{"c_uranus", on, off, na},
	{"c_neptune", on, off, na},
	{"c_pluto", on, off, na},
	{"c_planet_x", on, off, na},
	{"c_ceres", on, off, na},
	{"c_eris", on, off, na},

	// Spectral cards.
	{"c_familiar", on, off, na},
	{"c_grim", on, off, na},
	{"c_incantation", on, off, na},
	{"c_talisman", on, off, na},
	{"c_aura", on, off, na},
	{"c_wraith", on, off, na},
	{"c_sigil", on, off, na},
	{"c_ouija", on, off, na},
	{"c_ectoplasm", on, off, na},
	{"c_immolate", on, off, na},
	{"c_ankh", on, off, na},
	{"c_deja_vu", on, off, na},
	{"c_hex", on, off, na},
	{"c_trance", on, off, na},
	{"c_medium", on, off, na},
	{"c_cryptid", on, off, na},
	{"c_soul", on, off, na},
	{"c_black_hole", on, off, na},

	// Enhancements.
	{"m_bonus", on, off, na},
	{"m_mult", on, off, na},
	{"m_wild", on, off, na},
	{"m_glass", on, off, na},
	{"m_steel", on, off, na},
	{"m_stone", on, off, na},
	{"m_gold", on, off, na},
	{"m_lucky", on, off, na},

	// Editions.
	{"e_base", on, on, na},
	{"e_foil", on, off, na},
	{"e_holo", on, off, na},
	{"e_polychrome", on, off, na},
	{"e_negative", on, off, na},

	// Blinds.
	{"bl_small", on, on, na},
	{"bl_big", on, on, na},
	{"bl_ox", on, off, na},
	{"bl_hook", on, off, na},
	{"bl_mouth", on, off, na},
	{"bl_fish", on, off, na},
	{"bl_club", on, off, na},
	{"bl_manacle", on, off, na},
	{"bl_tooth", on, off, na},
	{"bl_wall", on, off, na},
	{"bl_house", on, off, na},
	{"bl_mark", on, off, na},
	{"bl_final_bell", on, off, na},
	{"bl_wheel", on, off, na},
	{"bl_arm", on, off, na},
	{"bl_psychic", on, off, na},
	{"bl_goad", on, off, na},
	{"bl_water", on, off, na},
	{"bl_eye", on, off, na},
	{"bl_plant", on, off, na},
	{"bl_needle", on, off, na},
	{"bl_head", on, off, na},
	{"bl_final_leaf", on, off, na},
	{"bl_final_vessel", on, off, na},
	{"bl_window", on, off, na},
	{"bl_serpent", on, off, na},
	{"bl_pillar", on, off, na},
	{"bl_flint", on, off, na},
	{"bl_final_acorn", on, off, na},
	{"bl_final_heart", on, off, na},

	// Tags.
	{"tag_uncommon", on, off, na},
	{"tag_rare", on, off, na},
	{"tag_negative", on, off, na},
	{"tag_foil", on, off, na},
	{"tag_holo", on, off, na},
	{"tag_polychrome", on, off, na},
	{"tag_investment", on, off, na},
	{"tag_voucher", on, off, na},
	{"tag_boss", on, off, na},
	{"tag_standard", on, off, na},
	{"tag_charm", on, off, na},
	{"tag_meteor", on, off, na},
	{"tag_buffoon", on, off, na},
	{"tag_handy", on, off, na},
	{"tag_garbage", on, off, na},
	{"tag_ethereal", on, off, na},
	{"tag_coupon", on, off, na},
	{"tag_double", on, off, na},
	{"tag_juggle", on, off, na},
	{"tag_d_six", on, off, na},
	{"tag_top_up", on, off, na},
	{"tag_skip", on, off, na},
	{"tag_orbital", on, off, na},
	{"tag_economy", on, off, na},

	// Booster packs.
	{"p_arcana_normal_1", on, on, na},
	{"p_arcana_normal_2", on, on, na},
	{"p_arcana_normal_3", on, on, na},
	{"p_arcana_normal_4", on, on, na},
	{"p_arcana_jumbo_1", on, on, na},
	{"p_arcana_jumbo_2", on, on, na},
	{"p_arcana_mega_1", on, on, na},
	{"p_arcana_mega_2", on, on, na},
	{"p_celestial_normal_1", on, on, na},
	{"p_celestial_normal_2", on, on, na},
	{"p_celestial_normal_3", on, on, na},
	{"p_celestial_normal_4", on, on, na},
	{"p_celestial_jumbo_1", on, on, na},
	{"p_celestial_jumbo_2", on, on, na},
	{"p_celestial_mega_1", on, on, na},
	{"p_celestial_mega_2", on, on, na},
	{"p_spectral_normal_1", on, on, na},
	{"p_spectral_normal_2", on, on, na},
	{"p_spectral_jumbo_1", on, on, na},
	{"p_spectral_mega_1", on, on, na},
	{"p_standard_normal_1", on, on, na},
	{"p_standard_normal_2", on, on, na},
	{"p_standard_normal_3", on, on, na},
	{"p_standard_normal_4", on, on, na},
	{"p_standard_jumbo_1", on, on, na},
	{"p_standard_jumbo_2", on, on, na},
	{"p_standard_mega_1", on, on, na},
	{"p_standard_mega_2", on, on, na},
	{"p_buffoon_normal_1", on, on, na},
	{"p_buffoon_normal_2", on, on, na},
	{"p_buffoon_jumbo_1", on, on, na},
	{"p_buffoon_mega_1", on, on, na},
}
