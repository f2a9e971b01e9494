// Package admission は決済系リクエストの段階的な受付判定パイプラインを提供する。
//
// 1つの汎用エンジン（Pipeline）が順序付きのルール列を先頭から評価し、
// 最初に拒否したルールの結果をそのまま返す。全ルールを通過した場合のみ
// 新しい識別子を採番してOKを返す。決済検証・返金依頼・取引状態照会の
// 3つの業務操作はこのエンジンのルール構成として定義される。
//
// ルールの順序は業務上の意味を持つため、並べ替えてはならない。
// 例えば決済金額の上限チェックは符号チェックより先に評価される。
package admission
